package usecase

import (
	"context"

	"courier/internal/domain/entity"
)

// MinimumDeliverymanAge is the youngest age at which a courier may apply
const MinimumDeliverymanAge = 18

// DeliverymanApplicationInput is a courier sign-up as submitted from the app.
// Birthdate is formatted YYYY-MM-DD; the identity image is mandatory.
type DeliverymanApplicationInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Zone           string
	Vehicle        string
	IdentityType   string
	IdentityNumber string
	Birthdate      string

	ProfileImage             []byte
	ProfileImageContentType  string
	IdentityImage            []byte
	IdentityImageContentType string
}

// DeliverymanUsecase manages courier accounts: sign-up applications, profiles and sign-in gating
type DeliverymanUsecase interface {
	// SubmitApplication stores the images and an inactive application; returns the application id
	SubmitApplication(ctx context.Context, input *DeliverymanApplicationInput) (string, error)

	// GetProfile returns an approved courier account by id
	GetProfile(ctx context.Context, id string) (*entity.Deliveryman, error)

	// FindByEmail returns the courier account registered with email
	FindByEmail(ctx context.Context, email string) (*entity.Deliveryman, error)

	// VerifyStatus returns the account when it may sign in, or a forbidden error carrying the reason
	VerifyStatus(ctx context.Context, email string) (*entity.Deliveryman, error)
}
