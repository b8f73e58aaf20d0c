package repository

import (
	"context"

	"courier/internal/domain/entity"
	"courier/internal/errors"
)

// ErrDeliverymanNotFound is returned when no courier account matches a lookup.
var ErrDeliverymanNotFound = errors.New("deliveryman not found")

// DeliverymanRepository stores courier accounts and their sign-up applications.
type DeliverymanRepository interface {
	// CreateApplication stores a new application under a generated id and returns that id.
	// createdAt and updatedAt are stamped by the store.
	CreateApplication(ctx context.Context, application *entity.DeliverymanApplication) (string, error)

	// FindByID reads an approved courier account.
	// Returns ErrDeliverymanNotFound if the document does not exist.
	FindByID(ctx context.Context, id string) (*entity.Deliveryman, error)

	// FindByEmail returns the first courier account registered with email.
	// Returns ErrDeliverymanNotFound when none matches.
	FindByEmail(ctx context.Context, email string) (*entity.Deliveryman, error)
}
