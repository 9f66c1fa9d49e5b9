// Package export renders operator reports.
package export

import (
	"bizhub/internal/domain/entity"
	"bizhub/internal/domain/service"
	"bizhub/internal/errors"

	"github.com/xuri/excelize/v2"
)

const (
	payoutSheet     = "Payouts"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	timeLayout      = "2006-01-02 15:04:05"
)

var payoutHeader = []any{
	"Request No", "User ID", "Amount", "Method", "UPI ID",
	"Account Number", "IFSC", "Account Holder", "Status", "Requested At",
}

type xlsxPayoutExporter struct{}

// NewPayoutExporter creates an xlsx exporter.
func NewPayoutExporter() service.PayoutExporter {
	return &xlsxPayoutExporter{}
}

func (e *xlsxPayoutExporter) ContentType() string {
	return xlsxContentType
}

// ExportWithdrawals writes one row per withdrawal under a bold header row.
func (e *xlsxPayoutExporter) ExportWithdrawals(withdrawals []*entity.ReferralWithdrawal) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", payoutSheet); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := f.SetSheetRow(payoutSheet, "A1", &payoutHeader); err != nil {
		return nil, errors.WithStack(err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := f.SetRowStyle(payoutSheet, 1, 1, headerStyle); err != nil {
		return nil, errors.WithStack(err)
	}

	for i, w := range withdrawals {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		amount, _ := w.Amount.Round(2).Float64()
		row := []any{
			w.RequestNo,
			w.UserID.String(),
			amount,
			string(w.Method),
			w.Details.UPIID,
			w.Details.AccountNumber,
			w.Details.IFSC,
			w.Details.AccountHolder,
			string(w.Status),
			w.CreatedAt.UTC().Format(timeLayout),
		}
		if err := f.SetSheetRow(payoutSheet, cell, &row); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if err := f.SetColWidth(payoutSheet, "A", "J", 22); err != nil {
		return nil, errors.WithStack(err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode workbook")
	}

	return buf.Bytes(), nil
}
