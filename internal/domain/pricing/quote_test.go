package pricing

import (
	"testing"

	"bizhub/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		plan            catalog.PlanID
		addOns          []string
		wantAddOnAmount int64
		wantSubtotal    int64
		wantGST         int64
		wantTotal       int64
		wantAddOns      []catalog.AddOnID
	}{
		{
			name:         "starter without add-ons",
			plan:         catalog.PlanStarter,
			wantSubtotal: 4999,
			wantGST:      900,
			wantTotal:    5899,
			wantAddOns:   []catalog.AddOnID{},
		},
		{
			name:            "business with pages and blog",
			plan:            catalog.PlanBusiness,
			addOns:          []string{"extra_pages", "blog_setup"},
			wantAddOnAmount: 6000,
			wantSubtotal:    25999,
			wantGST:         4680,
			wantTotal:       30679,
			wantAddOns:      []catalog.AddOnID{catalog.AddOnExtraPages, catalog.AddOnBlogSetup},
		},
		{
			name:            "duplicates counted once and unknown ids dropped",
			plan:            catalog.PlanBusiness,
			addOns:          []string{"blog_setup", "hologram", "blog_setup", "extra_pages"},
			wantAddOnAmount: 6000,
			wantSubtotal:    25999,
			wantGST:         4680,
			wantTotal:       30679,
			wantAddOns:      []catalog.AddOnID{catalog.AddOnBlogSetup, catalog.AddOnExtraPages},
		},
		{
			name:            "ecommerce with payment gateway",
			plan:            catalog.PlanEcommerce,
			addOns:          []string{"payment_gateway"},
			wantAddOnAmount: 5999,
			wantSubtotal:    40998,
			wantGST:         7380,
			wantTotal:       48378,
			wantAddOns:      []catalog.AddOnID{catalog.AddOnPaymentGateway},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			quote, err := Calculate(tt.plan, tt.addOns)
			require.NoError(t, err)

			plan, _ := catalog.LookupPlan(tt.plan)
			assert.Equal(t, plan.BasePrice, quote.BasePrice)
			assert.Equal(t, tt.wantAddOnAmount, quote.AddOnAmount)
			assert.Equal(t, tt.wantSubtotal, quote.Subtotal)
			assert.Equal(t, tt.wantGST, quote.GST)
			assert.Equal(t, tt.wantTotal, quote.Total)
			assert.Equal(t, tt.wantAddOns, quote.AddOns)
		})
	}
}

func TestCalculate_IsDeterministic(t *testing.T) {
	t.Parallel()

	addOns := []string{"seo_boost", "logo_design", "whatsapp_chat", "maintenance_plan"}
	for _, plan := range []catalog.PlanID{catalog.PlanStarter, catalog.PlanBusiness, catalog.PlanEcommerce} {
		first, err := Calculate(plan, addOns)
		require.NoError(t, err)
		second, err := Calculate(plan, addOns)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	}
}

func TestCalculate_Errors(t *testing.T) {
	t.Parallel()

	_, err := Calculate("platinum", nil)
	assert.ErrorIs(t, err, ErrUnknownPlan)

	_, err = Calculate(catalog.PlanEnterprise, nil)
	assert.ErrorIs(t, err, ErrNonPositiveTotal)
}

func TestGST_RoundsHalfUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		subtotal int64
		want     int64
	}{
		{subtotal: 0, want: 0},
		{subtotal: 25, want: 5},  // 4.5
		{subtotal: 75, want: 14},  // 13.5
		{subtotal: 4999, want: 900},
		{subtotal: 999, want: 180}, // 179.82
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GST(tt.subtotal), "subtotal %d", tt.subtotal)
	}
}

func TestForAmount(t *testing.T) {
	t.Parallel()

	breakdown, err := ForAmount(catalog.ListingFee)
	require.NoError(t, err)
	assert.Equal(t, int64(999), breakdown.Subtotal)
	assert.Equal(t, int64(180), breakdown.GST)
	assert.Equal(t, int64(1179), breakdown.Total)

	_, err = ForAmount(0)
	assert.ErrorIs(t, err, ErrNonPositiveTotal)
}
