package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"courier/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const orderQRType = "order"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Reference string `json:"ref"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateOrderQR generates a PNG QR code that a courier scans to open an order
func (s *qrcodeService) GenerateOrderQR(reference string) ([]byte, error) {
	if reference == "" {
		return nil, fmt.Errorf("order reference is required")
	}

	jsonData, err := json.Marshal(QRCodeData{
		Reference: reference,
		Type:      orderQRType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseOrderQR parses scanned QR code data and returns the order reference.
// A bare reference string (no JSON envelope) is accepted as-is.
func (s *qrcodeService) ParseOrderQR(qrData string) (string, error) {
	trimmed := strings.TrimSpace(qrData)
	if trimmed == "" {
		return "", fmt.Errorf("empty QR code data")
	}

	if !strings.HasPrefix(trimmed, "{") {
		return trimmed, nil
	}

	var data QRCodeData
	if err := json.Unmarshal([]byte(trimmed), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != orderQRType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.Reference == "" {
		return "", fmt.Errorf("QR code carries no order reference")
	}

	return data.Reference, nil
}
