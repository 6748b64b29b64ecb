// Package flatfile reads the sectioned batch interchange format: a plain
// text file where `---Name---` markers open a section and every following
// line is one semicolon-separated record of that section. Decimal fractions
// use a comma separator.
package flatfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/box"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/item"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/stock"
	"fulfillment/internal/core/ports"
)

const (
	sectionOrders         = "---Orders---"
	sectionStocks         = "---Stocks---"
	sectionBoxTypes       = "---BoxTypes---"
	sectionCarrierPricing = "---CarrierPricing---"
	sectionDepartureTimes = "---DepartureTimes---"
	sectionCarrierTimes   = "---CarrierTimes---"
	sectionItems          = "---Items---"
	timestampLayout       = "2006-01-02 15:04"
	timeOfDayLayout       = "15:04"
	fieldSeparator        = ";"
	windowSeparator       = ","
)

// Batch is the parsed content of one interchange file: the reference-data
// snapshot plus the orders to allocate against it.
type Batch struct {
	Data   ports.ReferenceData
	Orders []*order.Order
}

// Parse reads an interchange file. Lines before the first section marker are
// ignored; any malformed record fails the whole parse with its line number.
func Parse(r io.Reader) (Batch, error) {
	var batch Batch

	consume := func(string) error { return nil }
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		switch line {
		case sectionOrders:
			consume = func(l string) error {
				o, err := parseOrder(l)
				if err != nil {
					return err
				}
				batch.Orders = append(batch.Orders, o)
				return nil
			}
		case sectionStocks:
			consume = func(l string) error {
				s, err := parseStock(l)
				if err != nil {
					return err
				}
				batch.Data.Stocks = append(batch.Data.Stocks, s)
				return nil
			}
		case sectionBoxTypes:
			consume = func(l string) error {
				bt, err := parseBoxType(l)
				if err != nil {
					return err
				}
				batch.Data.BoxTypes = append(batch.Data.BoxTypes, bt)
				return nil
			}
		case sectionCarrierPricing:
			consume = func(l string) error {
				p, err := parseCarrierPricing(l)
				if err != nil {
					return err
				}
				batch.Data.CarrierPricings = append(batch.Data.CarrierPricings, p)
				return nil
			}
		case sectionDepartureTimes:
			consume = func(l string) error {
				s, err := parseDepartureSchedule(l)
				if err != nil {
					return err
				}
				batch.Data.DepartureSchedules = append(batch.Data.DepartureSchedules, s)
				return nil
			}
		case sectionCarrierTimes:
			consume = func(l string) error {
				tt, err := parseTransitTime(l)
				if err != nil {
					return err
				}
				batch.Data.TransitTimes = append(batch.Data.TransitTimes, tt)
				return nil
			}
		case sectionItems:
			consume = func(l string) error {
				it, err := parseItem(l)
				if err != nil {
					return err
				}
				batch.Data.Items = append(batch.Data.Items, it)
				return nil
			}
		default:
			if err := consume(line); err != nil {
				return Batch{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return Batch{}, fmt.Errorf("read input: %w", err)
	}

	return batch, nil
}

func splitFields(line string, want int) ([]string, error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) < want {
		return nil, fmt.Errorf("expected %d fields, got %d", want, len(fields))
	}
	return fields, nil
}

func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

// parseOrder reads `id;placedAt;itemID;quantity;targetState`. The quantity
// field is carried by the format but every order ships a single unit.
func parseOrder(line string) (*order.Order, error) {
	fields, err := splitFields(line, 5)
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("order id: %w", err)
	}

	placedAt, err := time.Parse(timestampLayout, strings.TrimSpace(fields[1]))
	if err != nil {
		return nil, fmt.Errorf("order timestamp: %w", err)
	}

	return order.NewOrder(id, placedAt, strings.TrimSpace(fields[2]), strings.TrimSpace(fields[4]))
}

// parseStock reads `itemID;warehouseName;quantity`.
func parseStock(line string) (*stock.Stock, error) {
	fields, err := splitFields(line, 3)
	if err != nil {
		return nil, err
	}

	warehouse, err := kernel.WarehouseFromName(strings.TrimSpace(fields[1]))
	if err != nil {
		return nil, err
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, fmt.Errorf("stock quantity: %w", err)
	}

	return stock.NewStock(strings.TrimSpace(fields[0]), warehouse, quantity)
}

// parseBoxType reads `name;maxWeight;length;width;height;volume`.
func parseBoxType(line string) (*box.Type, error) {
	fields, err := splitFields(line, 6)
	if err != nil {
		return nil, err
	}

	dims := make([]int, 4)
	for i := range dims {
		dims[i], err = strconv.Atoi(strings.TrimSpace(fields[i+1]))
		if err != nil {
			return nil, fmt.Errorf("box dimension: %w", err)
		}
	}

	volume, err := parseDecimal(fields[5])
	if err != nil {
		return nil, fmt.Errorf("box volume: %w", err)
	}

	return box.NewType(strings.TrimSpace(fields[0]), dims[0], dims[1], dims[2], dims[3], volume)
}

// parseCarrierPricing reads `warehouseName;targetState;volumePrice`.
func parseCarrierPricing(line string) (*carrier.Pricing, error) {
	fields, err := splitFields(line, 3)
	if err != nil {
		return nil, err
	}

	warehouse, err := kernel.WarehouseFromName(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, err
	}

	volumePrice, err := parseDecimal(fields[2])
	if err != nil {
		return nil, fmt.Errorf("volume price: %w", err)
	}

	return carrier.NewPricing(warehouse, strings.TrimSpace(fields[1]), volumePrice)
}

// parseDepartureSchedule reads `warehouseName;targetState;DAY HH:MM,DAY HH:MM,...`.
func parseDepartureSchedule(line string) (*carrier.DepartureSchedule, error) {
	fields, err := splitFields(line, 3)
	if err != nil {
		return nil, err
	}

	warehouse, err := kernel.WarehouseFromName(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, err
	}

	var hours []carrier.ShippingHour
	for _, windowText := range strings.Split(fields[2], windowSeparator) {
		window, windowErr := parseShippingHour(windowText)
		if windowErr != nil {
			return nil, windowErr
		}
		hours = append(hours, window)
	}

	return carrier.NewDepartureSchedule(warehouse, strings.TrimSpace(fields[1]), hours)
}

// parseShippingHour reads a `DAY HH:MM` window, e.g. `MONDAY 10:30`.
func parseShippingHour(text string) (carrier.ShippingHour, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) != 2 {
		return carrier.ShippingHour{}, fmt.Errorf("departure window %q: expected DAY HH:MM", text)
	}

	day, err := weekdayFromName(parts[0])
	if err != nil {
		return carrier.ShippingHour{}, err
	}

	timeOfDay, err := time.Parse(timeOfDayLayout, parts[1])
	if err != nil {
		return carrier.ShippingHour{}, fmt.Errorf("departure window %q: %w", text, err)
	}

	return carrier.NewShippingHour(day, timeOfDay.Hour(), timeOfDay.Minute())
}

// parseTransitTime reads `warehouseName;targetState;N hours`.
func parseTransitTime(line string) (*carrier.TransitTime, error) {
	fields, err := splitFields(line, 3)
	if err != nil {
		return nil, err
	}

	warehouse, err := kernel.WarehouseFromName(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, err
	}

	hoursText := strings.Fields(strings.TrimSpace(fields[2]))
	if len(hoursText) == 0 {
		return nil, fmt.Errorf("transit time is empty")
	}
	hours, err := strconv.Atoi(hoursText[0])
	if err != nil {
		return nil, fmt.Errorf("transit hours: %w", err)
	}

	return carrier.NewTransitTime(warehouse, strings.TrimSpace(fields[1]), hours)
}

// parseItem reads `id;name;weight;length;width;height`. The name field is
// carried by the format but not used by allocation.
func parseItem(line string) (*item.Item, error) {
	fields, err := splitFields(line, 6)
	if err != nil {
		return nil, err
	}

	values := make([]int, 4)
	for i := range values {
		values[i], err = strconv.Atoi(strings.TrimSpace(fields[i+2]))
		if err != nil {
			return nil, fmt.Errorf("item measurement: %w", err)
		}
	}

	return item.NewItem(strings.TrimSpace(fields[0]), values[0], values[1], values[2], values[3])
}

func weekdayFromName(name string) (time.Weekday, error) {
	switch strings.ToUpper(name) {
	case "MONDAY":
		return time.Monday, nil
	case "TUESDAY":
		return time.Tuesday, nil
	case "WEDNESDAY":
		return time.Wednesday, nil
	case "THURSDAY":
		return time.Thursday, nil
	case "FRIDAY":
		return time.Friday, nil
	case "SATURDAY":
		return time.Saturday, nil
	case "SUNDAY":
		return time.Sunday, nil
	default:
		return time.Sunday, fmt.Errorf("unknown weekday %q", name)
	}
}
