// Package catalog holds the static product catalog: website plans, add-ons
// and the fixed rates applied to them.
package catalog

import (
	"slices"

	"github.com/shopspring/decimal"
)

// PlanID identifies a website-build tier.
type PlanID string

const (
	PlanStarter    PlanID = "starter"
	PlanBusiness   PlanID = "business"
	PlanEcommerce  PlanID = "ecommerce"
	PlanEnterprise PlanID = "enterprise"
)

// AddOnID identifies an optional paid feature.
type AddOnID string

const (
	AddOnExtraPages      AddOnID = "extra_pages"
	AddOnBlogSetup       AddOnID = "blog_setup"
	AddOnSEOBoost        AddOnID = "seo_boost"
	AddOnWhatsAppChat    AddOnID = "whatsapp_chat"
	AddOnPaymentGateway  AddOnID = "payment_gateway"
	AddOnLogoDesign      AddOnID = "logo_design"
	AddOnMaintenancePlan AddOnID = "maintenance_plan"
)

// Plan is a website-build tier. Prices are whole rupees.
type Plan struct {
	ID             PlanID   `json:"id"`
	Name           string   `json:"name"`
	BasePrice      int64    `json:"basePrice"`
	PaymentEnabled bool     `json:"paymentEnabled"`
	Features       []string `json:"features"`
}

// AddOn is an optional feature priced on top of a plan.
type AddOn struct {
	ID    AddOnID `json:"id"`
	Name  string  `json:"name"`
	Price int64   `json:"price"`
}

const (
	// GSTPercent is applied to every subtotal.
	GSTPercent = 18

	// Currency for every amount in the catalog.
	Currency = "INR"

	// ListingFee is the one-off fee for publishing a business listing.
	ListingFee int64 = 999
)

var (
	// ReferralCommissionRate is the share of a referred payment credited to the referrer.
	ReferralCommissionRate = decimal.RequireFromString("0.25")

	// MinWithdrawalAmount is the smallest payout a referrer may request.
	MinWithdrawalAmount = decimal.NewFromInt(100)
)

var plans = []Plan{
	{
		ID:             PlanStarter,
		Name:           "Starter",
		BasePrice:      4999,
		PaymentEnabled: true,
		Features:       []string{"Up to 5 pages", "Mobile responsive design", "Contact form", "Basic SEO setup"},
	},
	{
		ID:             PlanBusiness,
		Name:           "Business",
		BasePrice:      19999,
		PaymentEnabled: true,
		Features:       []string{"Up to 15 pages", "Custom design", "Google Maps integration", "Analytics setup", "3 months support"},
	},
	{
		ID:             PlanEcommerce,
		Name:           "E-commerce",
		BasePrice:      34999,
		PaymentEnabled: true,
		Features:       []string{"Product catalog", "Cart and checkout", "Payment gateway integration", "Inventory dashboard", "6 months support"},
	},
	{
		ID:             PlanEnterprise,
		Name:           "Enterprise",
		BasePrice:      0,
		PaymentEnabled: false,
		Features:       []string{"Custom scope", "Dedicated project manager", "SLA backed support"},
	},
}

var addOns = []AddOn{
	{ID: AddOnExtraPages, Name: "Extra pages (5)", Price: 2500},
	{ID: AddOnBlogSetup, Name: "Blog setup", Price: 3500},
	{ID: AddOnSEOBoost, Name: "SEO boost", Price: 4999},
	{ID: AddOnWhatsAppChat, Name: "WhatsApp chat widget", Price: 1499},
	{ID: AddOnPaymentGateway, Name: "Payment gateway integration", Price: 5999},
	{ID: AddOnLogoDesign, Name: "Logo design", Price: 2999},
	{ID: AddOnMaintenancePlan, Name: "Annual maintenance plan", Price: 9999},
}

// Plans returns every plan in display order.
func Plans() []Plan {
	return slices.Clone(plans)
}

// AddOns returns every add-on in display order.
func AddOns() []AddOn {
	return slices.Clone(addOns)
}

// LookupPlan returns the plan with the given id.
func LookupPlan(id PlanID) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}

	return Plan{}, false
}

// LookupAddOn returns the add-on with the given id.
func LookupAddOn(id AddOnID) (AddOn, bool) {
	for _, a := range addOns {
		if a.ID == id {
			return a, true
		}
	}

	return AddOn{}, false
}

// IsKnownPlan reports whether id names a catalog plan.
func IsKnownPlan(id string) bool {
	_, ok := LookupPlan(PlanID(id))

	return ok
}
