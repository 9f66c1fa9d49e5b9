package handler

import (
	"net/http"
	"testing"

	"bizhub/internal/domain/entity"
	mockUsecase "bizhub/internal/mocks/usecase"
	"bizhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReferralHandler_Withdraw_PayoutDetailShapes(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails entity.PayoutDetails
	}{
		{
			name:        "flat upi id",
			body:        `{"amount":150,"method":"upi","upiId":"asha@upi"}`,
			wantDetails: entity.PayoutDetails{UPIID: "asha@upi"},
		},
		{
			name:        "nested upi id",
			body:        `{"amount":150,"method":"upi","details":{"upiId":"asha@upi"}}`,
			wantDetails: entity.PayoutDetails{UPIID: "asha@upi"},
		},
		{
			name:        "flat bank fields",
			body:        `{"amount":150,"method":"bank","accountNumber":"0012345","ifsc":"HDFC0001234","accountHolder":"Asha"}`,
			wantDetails: entity.PayoutDetails{AccountNumber: "0012345", IFSC: "HDFC0001234", AccountHolder: "Asha"},
		},
		{
			name:        "nested wins over flat",
			body:        `{"amount":150,"method":"upi","upiId":"old@upi","details":{"upiId":"new@upi"}}`,
			wantDetails: entity.PayoutDetails{UPIID: "new@upi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			referralUC := mockUsecase.NewMockReferralUsecase(t)
			h := NewReferralHandler(ReferralHandlerParams{ReferralUC: referralUC})
			userID := uuid.New()

			referralUC.EXPECT().
				RequestWithdrawal(mock.Anything, userID, mock.MatchedBy(func(in *usecase.WithdrawalInput) bool {
					return in.Amount.Equal(decimal.NewFromInt(150)) && in.Details == tt.wantDetails
				})).
				Return(&entity.ReferralWithdrawal{
					ID:        uuid.New(),
					RequestNo: "WD-20260115-000001",
					UserID:    userID,
					Amount:    decimal.NewFromInt(150),
					Details:   tt.wantDetails,
					Status:    entity.WithdrawalStatusRequested,
				}, nil).
				Once()

			c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/referral/withdraw", tt.body)
			c.Set("userID", userID)

			require.NoError(t, h.Withdraw(c))

			assert.Equal(t, http.StatusCreated, rec.Code)
			assert.Contains(t, rec.Body.String(), `"requestNo":"WD-20260115-000001"`)
		})
	}
}
