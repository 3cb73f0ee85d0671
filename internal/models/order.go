package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brucekarangwamanzi/tuma-tr/internal/apperr"
)

// OrderStatus tracks where an order sits in the sourcing pipeline.
type OrderStatus string

const (
	StatusRequested   OrderStatus = "REQUESTED"
	StatusPurchased   OrderStatus = "PURCHASED"
	StatusInWarehouse OrderStatus = "IN_WAREHOUSE"
	StatusInTransit   OrderStatus = "IN_TRANSIT"
	StatusArrived     OrderStatus = "ARRIVED"
	StatusCompleted   OrderStatus = "COMPLETED"
	StatusDeclined    OrderStatus = "DECLINED"
)

// statusRank orders the normal pipeline for forward-only checks.
// DECLINED is a side branch and carries no rank.
var statusRank = map[OrderStatus]int{
	StatusRequested:   0,
	StatusPurchased:   1,
	StatusInWarehouse: 2,
	StatusInTransit:   3,
	StatusArrived:     4,
	StatusCompleted:   5,
}

var statusLabels = map[OrderStatus]string{
	StatusRequested:   "Requested",
	StatusPurchased:   "Purchased in China",
	StatusInWarehouse: "In Warehouse",
	StatusInTransit:   "In Ship/Airplane",
	StatusArrived:     "Arrived in Rwanda",
	StatusCompleted:   "Delivered / Completed",
	StatusDeclined:    "Declined",
}

// ParseOrderStatus converts a raw string into a known OrderStatus.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := statusLabels[s]; !ok {
		return "", fmt.Errorf("unknown order status %q", raw)
	}
	return s, nil
}

// Label returns the customer-facing name for the status.
func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsTerminal reports whether the status permits no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusDeclined
}

// ValidateTransition checks whether an order may move between two statuses.
// Setting the current status again is always a valid no-op. Terminal orders
// never change. Strict mode additionally requires forward progress through
// the pipeline; DECLINED stays reachable from any non-terminal status.
func ValidateTransition(from, to OrderStatus, strict bool) error {
	if from == to {
		return nil
	}
	if from.IsTerminal() {
		return apperr.Validation("order is already %s and can no longer change status", from.Label())
	}
	if !strict || to == StatusDeclined {
		return nil
	}
	if statusRank[to] <= statusRank[from] {
		return apperr.Validation("order cannot move back from %s to %s", from.Label(), to.Label())
	}
	return nil
}

// StatusEntry is one row of an order's append-only status history.
type StatusEntry struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
}

// Order is a product sourcing request owned by exactly one user.
type Order struct {
	BaseModel
	UserID         uuid.UUID     `json:"user_id"`
	ProductURL     string        `json:"product_url"`
	ProductName    string        `json:"product_name"`
	Quantity       int           `json:"quantity"`
	Variation      string        `json:"variation,omitempty"`
	Specifications string        `json:"specifications,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	ScreenshotURL  string        `json:"screenshot_url"`
	Status         OrderStatus   `json:"status"`
	StatusHistory  []StatusEntry `json:"status_history"`
}

// Clone returns a deep copy so callers cannot alias stored history.
func (o Order) Clone() Order {
	out := o
	out.StatusHistory = make([]StatusEntry, len(o.StatusHistory))
	copy(out.StatusHistory, o.StatusHistory)
	return out
}

// LastStatusEntry returns the most recent history row, if any.
func (o Order) LastStatusEntry() (StatusEntry, bool) {
	if len(o.StatusHistory) == 0 {
		return StatusEntry{}, false
	}
	return o.StatusHistory[len(o.StatusHistory)-1], true
}
