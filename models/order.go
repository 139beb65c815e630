package models

import "fmt"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
)

// StatusBadge is the presentation triple for an order status.
type StatusBadge struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// Badge maps a status to its badge. The four constants above are the only
// constructible statuses; anything else trips the assertion.
func (s OrderStatus) Badge() StatusBadge {
	switch s {
	case StatusPending:
		return StatusBadge{Color: "#FF9500", Icon: "time-outline", Label: "Pending"}
	case StatusProcessing:
		return StatusBadge{Color: "#007AFF", Icon: "sync-outline", Label: "Processing"}
	case StatusShipped:
		return StatusBadge{Color: "#5856D6", Icon: "airplane-outline", Label: "Shipped"}
	case StatusDelivered:
		return StatusBadge{Color: "#34C759", Icon: "checkmark-circle-outline", Label: "Delivered"}
	default:
		panic(fmt.Sprintf("unknown order status: %q", string(s)))
	}
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID         string      `json:"id"`
	Date       string      `json:"date"`
	Items      []CartItem  `json:"items"`
	TotalCents int64       `json:"total_cents"`
	Status     OrderStatus `json:"status"`
}

// OrderNumber formats the nth order (1-indexed) as ORD-NNN.
func OrderNumber(n int) string {
	return fmt.Sprintf("ORD-%03d", n)
}
