package firestore

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"courier/config"
	"courier/internal/domain/entity"

	cloudfirestore "cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliverymanRepository_Collections(t *testing.T) {
	t.Setenv("FIRESTORE_EMULATOR_HOST", "localhost:8681")

	client, err := cloudfirestore.NewClient(context.Background(), "courier-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	repo := newDeliverymanRepository(client, &config.FirestoreConfig{
		DeliverymanCollection: "deliverymen",
		ApplicationCollection: "deliverymen_applications",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, "deliverymen", repo.deliverymanCollection)
	assert.Equal(t, "deliverymen_applications", repo.applicationCollection)
}

func TestApplicationFields(t *testing.T) {
	t.Run("full application", func(t *testing.T) {
		fields := applicationFields("app1", &entity.DeliverymanApplication{
			FirstName:        "Youssef",
			LastName:         "Alaoui",
			Email:            " Youssef@Example.COM ",
			Phone:            "0600000000",
			Zone:             "Maarif",
			Vehicle:          "scooter",
			IdentityType:     "cin",
			IdentityNumber:   "BK123456",
			Age:              27,
			Birthdate:        "1998-04-02",
			ProfileImageURL:  "https://cdn.test/profile.jpg",
			IdentityImageURL: "https://cdn.test/identity.jpg",
			Status:           entity.DeliverymanStatusInactive,
		})

		assert.Equal(t, "app1", fields["id"])
		assert.Equal(t, "youssef@example.com", fields["email"])
		assert.Equal(t, "inactive", fields["status"])
		assert.Equal(t, 27, fields["age"])
		assert.Equal(t, "https://cdn.test/profile.jpg", fields["profileImageUrl"])
		assert.Equal(t, "https://cdn.test/identity.jpg", fields["identityImageUrl"])
		assert.NotContains(t, fields, "createdAt")
	})

	t.Run("images omitted when not uploaded", func(t *testing.T) {
		fields := applicationFields("app2", &entity.DeliverymanApplication{Email: "a@b.c"})

		assert.NotContains(t, fields, "profileImageUrl")
		assert.NotContains(t, fields, "identityImageUrl")
	})
}

func TestToDeliverymanDomain(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("document id wins", func(t *testing.T) {
		d := toDeliverymanDomain("d1", &deliverymanDocument{
			ID:        "stale",
			FirstName: "Nadia",
			LastName:  "Tazi",
			Email:     "nadia@example.com",
			Status:    "suspended",
			Age:       31,
			CreatedAt: &created,
		})

		assert.Equal(t, "d1", d.ID)
		assert.Equal(t, "Nadia Tazi", d.FullName())
		assert.Equal(t, entity.DeliverymanStatusSuspended, d.Status)
		assert.Equal(t, 31, d.Age)
		assert.Equal(t, &created, d.CreatedAt)
	})

	t.Run("missing status is inactive", func(t *testing.T) {
		d := toDeliverymanDomain("d2", &deliverymanDocument{})

		assert.Equal(t, entity.DeliverymanStatusInactive, d.Status)
	})
}
