package qrcode

import (
	"bizhub/internal/domain/service"
	"bizhub/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize  = 256
	minSize      = 64
	maxSize      = 2048
	defaultLevel = "M"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size < minSize || size > maxSize {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseLevel(errorCorrectionLevel),
	}
}

func parseLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateCertificateQR encodes the public verification URL as a PNG.
func (s *qrcodeService) GenerateCertificateQR(url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("certificate url is empty")
	}

	qrCode, err := qrcode.New(url, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
