package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
		wantSize             int
		wantLevel            qrcode.RecoveryLevel
	}{
		{"Low error correction", 256, "L", 256, qrcode.Low},
		{"Medium error correction", 256, "M", 256, qrcode.Medium},
		{"High error correction", 256, "Q", 256, qrcode.High},
		{"Highest error correction", 256, "H", 256, qrcode.Highest},
		{"Default error correction", 256, "invalid", 256, qrcode.Medium},
		{"Zero size falls back", 0, "M", defaultSize, qrcode.Medium},
		{"Oversized falls back", 10000, "M", defaultSize, qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel).(*qrcodeService)
			assert.Equal(t, tt.wantSize, svc.size)
			assert.Equal(t, tt.wantLevel, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateCertificateQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	qrBytes, err := svc.GenerateCertificateQR("https://bizhub.example/certificates/CERT-20250101-123456")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateCertificateQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(size, "M")

		qrBytes, err := svc.GenerateCertificateQR("https://bizhub.example/certificates/CERT-1")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_GenerateCertificateQR_EmptyURL(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateCertificateQR("")
	assert.Error(t, err)
}
