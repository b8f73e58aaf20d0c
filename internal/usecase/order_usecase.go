package usecase

import (
	"context"

	"courier/internal/domain/entity"
)

// OrderUsecase normalizes orders and reads/patches them across the owner subcollections
// and the flat order collection as if they were one store.
// Lookups report a miss as false; storage failures are logged and never returned.
type OrderUsecase interface {
	// MapOrderFields converts a raw order document into a canonical order
	MapOrderFields(raw entity.RawOrder) *entity.Order

	// FetchAll returns every order from both locations; subcollection orders win on id collision.
	// A storage failure yields an empty result.
	FetchAll(ctx context.Context) []*entity.Order

	// FetchOne reads an owner's order directly, falling back to FindByID on a miss
	FetchOne(ctx context.Context, ownerID, orderID string) (*entity.Order, bool)

	// FindByID searches all orders for the first one with orderID
	FindByID(ctx context.Context, orderID string) (*entity.Order, bool)

	// ResolveReference looks up an "ownerId_orderId" reference or a bare order id
	ResolveReference(ctx context.Context, reference string) (*entity.Order, bool)

	// UpdateStatus patches the order in both locations; true when at least one write succeeded
	UpdateStatus(ctx context.Context, ownerID, orderID string, status entity.OrderStatus, extra map[string]any) bool

	// AcceptOrder marks the order confirmed and stamps acceptedAt
	AcceptOrder(ctx context.Context, ownerID, orderID string) bool

	// StartDelivery marks the order in-progress and stamps startedAt
	StartDelivery(ctx context.Context, ownerID, orderID string) bool

	// MarkDelivered marks the order delivered, stamps deliveredAt and stores the delivery payload
	MarkDelivered(ctx context.Context, ownerID, orderID string, delivery map[string]any) bool
}
