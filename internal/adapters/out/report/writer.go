// Package report renders batch results in the interchange report format: the
// batch total on the first line, then one semicolon-separated line per
// shipment in processing order.
package report

import (
	"bufio"
	"fmt"
	"io"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/shipment"
)

const timestampLayout = "2006-01-02 15:04"

// Write renders the batch result. Prices are printed with three decimals.
func Write(w io.Writer, result commands.ProcessBatchResult) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%.3f\n", result.TotalPrice); err != nil {
		return err
	}

	for _, info := range result.Shipments {
		if _, err := bw.WriteString(Line(info) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Line renders one shipment:
// orderID;warehouse;guaranteed delivery;box;carrier price;experience price.
func Line(info *shipment.Info) string {
	return fmt.Sprintf("%d;%s;%s;%s;%.3f;%.3f",
		info.OrderID(),
		info.Warehouse().Name(),
		info.GuaranteedDelivery().Format(timestampLayout),
		info.BoxName(),
		info.CarrierPrice(),
		info.ExperiencePrice(),
	)
}
