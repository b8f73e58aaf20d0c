package firestore

import (
	"time"

	"courier/internal/domain/entity"
)

// deliverymanDocument is the Firestore shape of courier accounts and applications.
type deliverymanDocument struct {
	ID        string `firestore:"id,omitempty"`
	FirstName string `firestore:"firstName"`
	LastName  string `firestore:"lastName"`
	Email     string `firestore:"email"`
	Phone     string `firestore:"phone"`
	Zone      string `firestore:"zone"`
	Vehicle   string `firestore:"vehicle"`
	Status    string `firestore:"status"`

	IdentityType   string `firestore:"identityType"`
	IdentityNumber string `firestore:"identityNumber"`
	Age            int    `firestore:"age"`
	Birthdate      string `firestore:"birthdate"`

	ProfileImageURL  string `firestore:"profileImageUrl,omitempty"`
	IdentityImageURL string `firestore:"identityImageUrl,omitempty"`

	CreatedAt *time.Time `firestore:"createdAt,omitempty"`
	UpdatedAt *time.Time `firestore:"updatedAt,omitempty"`
}

// applicationFields is the document written for a new application.
// Timestamps are left to the caller so they can be server stamped.
func applicationFields(id string, application *entity.DeliverymanApplication) map[string]any {
	fields := map[string]any{
		"id":             id,
		"firstName":      application.FirstName,
		"lastName":       application.LastName,
		"email":          entity.NormalizeEmail(application.Email),
		"phone":          application.Phone,
		"zone":           application.Zone,
		"vehicle":        application.Vehicle,
		"identityType":   application.IdentityType,
		"identityNumber": application.IdentityNumber,
		"age":            application.Age,
		"birthdate":      application.Birthdate,
		"status":         string(application.Status),
	}

	if application.ProfileImageURL != "" {
		fields["profileImageUrl"] = application.ProfileImageURL
	}
	if application.IdentityImageURL != "" {
		fields["identityImageUrl"] = application.IdentityImageURL
	}

	return fields
}

// toDeliverymanDomain converts a stored account; the document id wins over a stored id field.
func toDeliverymanDomain(docID string, doc *deliverymanDocument) *entity.Deliveryman {
	status := entity.DeliverymanStatus(doc.Status)
	if status == "" {
		status = entity.DeliverymanStatusInactive
	}

	return &entity.Deliveryman{
		ID:               docID,
		FirstName:        doc.FirstName,
		LastName:         doc.LastName,
		Email:            doc.Email,
		Phone:            doc.Phone,
		Zone:             doc.Zone,
		Vehicle:          doc.Vehicle,
		Status:           status,
		IdentityType:     doc.IdentityType,
		IdentityNumber:   doc.IdentityNumber,
		Age:              doc.Age,
		Birthdate:        doc.Birthdate,
		ProfileImageURL:  doc.ProfileImageURL,
		IdentityImageURL: doc.IdentityImageURL,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}
}
