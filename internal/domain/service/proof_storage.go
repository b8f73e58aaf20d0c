package service

import (
	"context"
)

// ProofStorage stores delivery proof images and returns where they can be fetched from.
type ProofStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
