// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// OrderStatus represents the lifecycle state of a delivery order.
type OrderStatus string

const (
	// OrderStatusPending is the default status of an order nobody has accepted yet.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed indicates a courier accepted the order.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusProgress is the legacy spelling of an order on its way.
	OrderStatusProgress OrderStatus = "progress"
	// OrderStatusInProgress indicates the courier started the delivery.
	OrderStatusInProgress OrderStatus = "in-progress"
	// OrderStatusCompleted indicates the order was closed by the restaurant.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusDelivered indicates the courier handed the order over.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled indicates the order will not be delivered.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProgress, OrderStatusInProgress,
		OrderStatusCompleted, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// DisplayName returns the label shown to couriers for the status.
func (s OrderStatus) DisplayName() string {
	switch s {
	case OrderStatusPending:
		return "En Attente"
	case OrderStatusConfirmed:
		return "Confirmée"
	case OrderStatusProgress, OrderStatusInProgress:
		return "En Cours"
	case OrderStatusCompleted:
		return "Terminée"
	case OrderStatusDelivered:
		return "Livrée"
	case OrderStatusCancelled:
		return "Annulée"
	case "":
		return "Inconnu"
	default:
		first, size := utf8.DecodeRuneInString(string(s))

		return string(unicode.ToUpper(first)) + string(s)[size:]
	}
}

// PaymentStatus represents whether an order has been paid.
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// PaymentMethod represents how the customer pays for an order.
type PaymentMethod string

const (
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodOnlinePayment  PaymentMethod = "online_payment"
	PaymentMethodOther          PaymentMethod = "other"
)

// ParseOrderStatus normalizes user input into an OrderStatus.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))

	return status, status.IsValid()
}
