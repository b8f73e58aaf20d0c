package usecase

import (
	"context"
	"time"

	"courier/internal/domain/entity"
)

// DeliveryConfirmation is what a courier submits when handing an order over.
// At least one of Signature or ProofImage is required.
type DeliveryConfirmation struct {
	Notes                string
	AmountCollected      *float64
	Signature            []byte
	SignatureContentType string
	ProofImage           []byte
	ProofContentType     string
}

// DeliveryReceipt describes a confirmed delivery
type DeliveryReceipt struct {
	OrderID            string    `json:"orderId"`
	OwnerID            string    `json:"ownerId"`
	SignatureURL       string    `json:"signatureUrl,omitempty"`
	ProofOfDeliveryURL string    `json:"proofOfDeliveryUrl,omitempty"`
	DeliveredAt        time.Time `json:"deliveredAt"`
}

// DeliveryUsecase handles courier hand-over of orders
type DeliveryUsecase interface {
	// ConfirmDelivery stores the proof images and marks the order delivered
	ConfirmDelivery(ctx context.Context, ownerID, orderID string, confirmation *DeliveryConfirmation) (*DeliveryReceipt, error)

	// OrderQRCode renders a PNG QR code carrying the order reference
	OrderQRCode(ctx context.Context, ownerID, orderID string) ([]byte, error)

	// ScanOrderQR resolves the content of a scanned order QR code to its order
	ScanOrderQR(ctx context.Context, data string) (*entity.Order, error)
}
