package usecase

import (
	"strings"

	"courier/internal/domain/entity"
)

// OrderFilter narrows an order list the way the courier delivery tabs do.
// A zero filter matches every order.
type OrderFilter struct {
	Status entity.OrderStatus
	// Search is matched case-insensitively against customer name, address and order id
	Search string
}

// Matches reports whether order passes the filter
func (f OrderFilter) Matches(order *entity.Order) bool {
	if f.Status != "" && !sameTab(f.Status, order.Status) {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Search))
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(order.CustomerName), query) ||
		strings.Contains(strings.ToLower(order.Address), query) ||
		strings.Contains(strings.ToLower(order.ID), query)
}

// Apply returns the orders that pass the filter, preserving order
func (f OrderFilter) Apply(orders []*entity.Order) []*entity.Order {
	matched := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if f.Matches(order) {
			matched = append(matched, order)
		}
	}

	return matched
}

// OrderCounts are the per-tab badges of the delivery list
type OrderCounts struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Delivered  int `json:"delivered"`
}

// CountOrders tallies orders per tab; both spellings of in-progress count as one
func CountOrders(orders []*entity.Order) OrderCounts {
	counts := OrderCounts{Total: len(orders)}
	for _, order := range orders {
		switch order.Status {
		case entity.OrderStatusPending:
			counts.Pending++
		case entity.OrderStatusProgress, entity.OrderStatusInProgress:
			counts.InProgress++
		case entity.OrderStatusDelivered:
			counts.Delivered++
		}
	}

	return counts
}

func sameTab(want, got entity.OrderStatus) bool {
	if want == got {
		return true
	}

	return isUnderway(want) && isUnderway(got)
}

func isUnderway(status entity.OrderStatus) bool {
	return status == entity.OrderStatusProgress || status == entity.OrderStatusInProgress
}
