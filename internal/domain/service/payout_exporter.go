package service

import "bizhub/internal/domain/entity"

// PayoutExporter renders withdrawals into a spreadsheet for the finance team.
type PayoutExporter interface {
	// ExportWithdrawals returns the encoded workbook.
	ExportWithdrawals(withdrawals []*entity.ReferralWithdrawal) ([]byte, error)

	// ContentType of the encoded workbook.
	ContentType() string
}
