package memory

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
)

// routeKey identifies a shipping lane: one warehouse to one target state.
type routeKey struct {
	warehouse   kernel.Warehouse
	targetState string
}

func (k routeKey) String() string {
	return fmt.Sprintf("%s->%s", k.warehouse, k.targetState)
}
