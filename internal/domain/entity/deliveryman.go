package entity

import (
	"strings"
	"time"
)

// DeliverymanStatus is the review state of a courier account.
type DeliverymanStatus string

const (
	// DeliverymanStatusActive accounts may sign in and take orders.
	DeliverymanStatusActive DeliverymanStatus = "active"
	// DeliverymanStatusInactive is the state of an application awaiting approval.
	DeliverymanStatusInactive DeliverymanStatus = "inactive"
	// DeliverymanStatusSuspended accounts were disabled by support.
	DeliverymanStatusSuspended DeliverymanStatus = "suspended"
)

// IsActive reports whether the courier may use the app.
func (s DeliverymanStatus) IsActive() bool {
	return s == DeliverymanStatusActive
}

// BlockedReason is the message shown to a courier whose account is not active.
func (s DeliverymanStatus) BlockedReason() string {
	switch s {
	case DeliverymanStatusActive:
		return ""
	case DeliverymanStatusInactive:
		return "Votre compte est actuellement inactif. Veuillez attendre l'approbation de votre compte."
	case DeliverymanStatusSuspended:
		return "Votre compte a été suspendu. Veuillez contacter l'assistance pour plus d'informations."
	default:
		return "Votre compte est actuellement " + string(s) + ". Veuillez contacter l'assistance."
	}
}

// Deliveryman is an approved courier account.
type Deliveryman struct {
	ID        string            `json:"id"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Email     string            `json:"email"`
	Phone     string            `json:"phone"`
	Zone      string            `json:"zone"`
	Vehicle   string            `json:"vehicle"`
	Status    DeliverymanStatus `json:"status"`

	IdentityType   string `json:"identityType"`
	IdentityNumber string `json:"identityNumber"`
	Age            int    `json:"age"`
	Birthdate      string `json:"birthdate"`

	ProfileImageURL  string `json:"profileImageUrl,omitempty"`
	IdentityImageURL string `json:"identityImageUrl,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FullName joins first and last name.
func (d *Deliveryman) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// DeliverymanApplication is a courier sign-up submitted for review.
// Applications are stored apart from accounts; support promotes them by hand.
type DeliverymanApplication struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Zone           string
	Vehicle        string
	IdentityType   string
	IdentityNumber string
	Age            int
	Birthdate      string

	ProfileImageURL  string
	IdentityImageURL string

	Status DeliverymanStatus
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
