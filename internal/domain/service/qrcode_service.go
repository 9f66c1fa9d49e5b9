package service

// QRCodeService renders QR code images.
type QRCodeService interface {
	// GenerateCertificateQR renders a PNG QR code encoding the certificate URL
	GenerateCertificateQR(certificateURL string) ([]byte, error)
}
