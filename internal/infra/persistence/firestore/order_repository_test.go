package firestore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"courier/config"
	"courier/internal/domain/repository"
	"courier/internal/errors"

	cloudfirestore "cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newTestRepository(t *testing.T) *orderRepository {
	t.Helper()

	// The emulator setting makes the client skip credentials; no call below reaches the network
	t.Setenv("FIRESTORE_EMULATOR_HOST", "localhost:8681")

	client, err := cloudfirestore.NewClient(context.Background(), "courier-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return newOrderRepository(client, &config.FirestoreConfig{
		OwnerCollection: "owners",
		OrderCollection: "orders",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestOrderRepository_OwnerIDFromRef(t *testing.T) {
	repo := newTestRepository(t)
	client := repo.client

	t.Run("subcollection order", func(t *testing.T) {
		ref := client.Collection("owners").Doc("u1").Collection("orders").Doc("o1")

		ownerID, ok := repo.ownerIDFromRef(ref)
		require.True(t, ok)
		assert.Equal(t, "u1", ownerID)
	})

	t.Run("flat order", func(t *testing.T) {
		ref := client.Collection("orders").Doc("o1")

		_, ok := repo.ownerIDFromRef(ref)
		assert.False(t, ok)
	})

	t.Run("orders under another parent collection", func(t *testing.T) {
		ref := client.Collection("restaurants").Doc("r1").Collection("orders").Doc("o1")

		_, ok := repo.ownerIDFromRef(ref)
		assert.False(t, ok)
	})

	t.Run("nil ref", func(t *testing.T) {
		_, ok := repo.ownerIDFromRef(nil)
		assert.False(t, ok)
	})
}

func TestOrderRepository_OwnerOrderRef(t *testing.T) {
	repo := newTestRepository(t)

	ref := repo.ownerOrderRef("u1", "o1")
	assert.Equal(t, "o1", ref.ID)
	assert.Equal(t, "orders", ref.Parent.ID)
	assert.Equal(t, "u1", ref.Parent.Parent.ID)
	assert.Equal(t, "owners", ref.Parent.Parent.Parent.ID)
}

func TestBuildUpdates(t *testing.T) {
	t.Run("stamps updatedAt", func(t *testing.T) {
		updates := buildUpdates(map[string]any{"status": "confirmed", "acceptedAt": "now"})

		require.Len(t, updates, 3)
		assert.Equal(t, cloudfirestore.FieldPath{"acceptedAt"}, updates[0].FieldPath)
		assert.Equal(t, cloudfirestore.FieldPath{"status"}, updates[1].FieldPath)
		assert.Equal(t, "confirmed", updates[1].Value)
		assert.Equal(t, cloudfirestore.FieldPath{"updatedAt"}, updates[2].FieldPath)
		assert.Equal(t, cloudfirestore.ServerTimestamp, updates[2].Value)
	})

	t.Run("keeps caller updatedAt", func(t *testing.T) {
		updates := buildUpdates(map[string]any{"status": "delivered", "updatedAt": "client-time"})

		require.Len(t, updates, 2)
		assert.Equal(t, cloudfirestore.FieldPath{"updatedAt"}, updates[1].FieldPath)
		assert.Equal(t, "client-time", updates[1].Value)
	})

	t.Run("server timestamp marker", func(t *testing.T) {
		updates := buildUpdates(map[string]any{"acceptedAt": repository.ServerTimestamp{}})

		assert.Equal(t, cloudfirestore.ServerTimestamp, updates[0].Value)
	})

	t.Run("dotted keys stay literal", func(t *testing.T) {
		updates := buildUpdates(map[string]any{"proof.url": "x"})

		assert.Equal(t, cloudfirestore.FieldPath{"proof.url"}, updates[0].FieldPath)
	})
}

func TestIsNotFound(t *testing.T) {
	notFound := status.Error(codes.NotFound, "no document")

	assert.True(t, isNotFound(notFound))
	assert.True(t, isNotFound(errors.Wrap(notFound, "get")))
	assert.False(t, isNotFound(status.Error(codes.Unavailable, "down")))
	assert.False(t, isNotFound(repository.ErrOrderNotFound))
}
