package export

import (
	"bytes"
	"testing"
	"time"

	"bizhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportWithdrawals(t *testing.T) {
	userID := uuid.New()
	withdrawals := []*entity.ReferralWithdrawal{
		{
			RequestNo: "WD-20250101-000001",
			UserID:    userID,
			Amount:    decimal.RequireFromString("250.50"),
			Method:    entity.PayoutMethodUPI,
			Details:   entity.PayoutDetails{UPIID: "owner@upi"},
			Status:    entity.WithdrawalStatusRequested,
			CreatedAt: time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC),
		},
		{
			RequestNo: "WD-20250101-000002",
			UserID:    userID,
			Amount:    decimal.NewFromInt(100),
			Method:    entity.PayoutMethodBank,
			Details:   entity.PayoutDetails{AccountNumber: "001122", IFSC: "HDFC0000001", AccountHolder: "A Owner"},
			Status:    entity.WithdrawalStatusProcessing,
			CreatedAt: time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC),
		},
	}

	exporter := NewPayoutExporter()
	data, err := exporter.ExportWithdrawals(withdrawals)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(payoutSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Request No", rows[0][0])
	assert.Equal(t, "WD-20250101-000001", rows[1][0])
	assert.Equal(t, "250.5", rows[1][2])
	assert.Equal(t, "owner@upi", rows[1][4])
	assert.Equal(t, "bank", rows[2][3])
	assert.Equal(t, "HDFC0000001", rows[2][6])
	assert.Equal(t, "processing", rows[2][8])
}

func TestExportWithdrawals_Empty(t *testing.T) {
	data, err := NewPayoutExporter().ExportWithdrawals(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(payoutSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, xlsxContentType, NewPayoutExporter().ContentType())
}
