// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"courier/internal/domain/entity"
	"courier/internal/errors"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order document does not exist at the requested path.
	ErrOrderNotFound = errors.New("order not found")
)

// ServerTimestamp is a patch value the store replaces with its own commit time.
type ServerTimestamp struct{}

// OrderDocument is a raw order document together with where it was read from.
type OrderDocument struct {
	ID string
	// OwnerID is the owning account of a subcollection document; empty for flat collection documents.
	OwnerID string
	Data    entity.RawOrder
}

// OrderRepository reads and patches order documents stored in two locations:
// per-owner subcollections and a flat top-level collection.
type OrderRepository interface {
	// ListOwnerOrders returns every order filed under any owner's subcollection.
	ListOwnerOrders(ctx context.Context) ([]*OrderDocument, error)

	// ListFlatOrders returns every order in the top-level collection.
	ListFlatOrders(ctx context.Context) ([]*OrderDocument, error)

	// FindOwnerOrder reads a single subcollection order.
	// Returns ErrOrderNotFound if the document does not exist.
	FindOwnerOrder(ctx context.Context, ownerID, orderID string) (*OrderDocument, error)

	// UpdateOwnerOrder merges fields into an existing subcollection order and stamps updatedAt.
	UpdateOwnerOrder(ctx context.Context, ownerID, orderID string, fields map[string]any) error

	// UpdateFlatOrder merges fields into an existing top-level order and stamps updatedAt.
	UpdateFlatOrder(ctx context.Context, orderID string, fields map[string]any) error
}
