// Package pricing computes price breakdowns for catalog plans and fees.
package pricing

import (
	"bizhub/internal/domain/catalog"
	"bizhub/internal/domain/entity"
	"bizhub/internal/errors"
)

var (
	// ErrUnknownPlan is returned when the plan id is not in the catalog.
	ErrUnknownPlan = errors.New("unknown plan")
	// ErrNonPositiveTotal is returned when a breakdown would charge nothing.
	ErrNonPositiveTotal = errors.New("quote total must be positive")
)

// Quote is a priced plan selection.
type Quote struct {
	entity.PriceBreakdown

	Plan   catalog.PlanID    `json:"plan"`
	AddOns []catalog.AddOnID `json:"addOns"`
}

// Calculate prices a plan with the given add-ons. Unknown add-on ids are
// dropped and repeated ids are counted once; the returned AddOns keep the
// first-seen order of the accepted ids.
func Calculate(planID catalog.PlanID, addOnIDs []string) (*Quote, error) {
	plan, ok := catalog.LookupPlan(planID)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPlan, "plan %q", planID)
	}

	accepted := make([]catalog.AddOnID, 0, len(addOnIDs))
	seen := make(map[catalog.AddOnID]struct{}, len(addOnIDs))

	var addOnAmount int64
	for _, raw := range addOnIDs {
		id := catalog.AddOnID(raw)
		if _, dup := seen[id]; dup {
			continue
		}
		addOn, known := catalog.LookupAddOn(id)
		if !known {
			continue
		}
		seen[id] = struct{}{}
		accepted = append(accepted, id)
		addOnAmount += addOn.Price
	}

	breakdown, err := breakdownFor(plan.BasePrice, addOnAmount)
	if err != nil {
		return nil, err
	}

	return &Quote{
		PriceBreakdown: breakdown,
		Plan:           plan.ID,
		AddOns:         accepted,
	}, nil
}

// ForAmount prices a flat fee with GST applied.
func ForAmount(base int64) (entity.PriceBreakdown, error) {
	return breakdownFor(base, 0)
}

// GST returns the tax on subtotal rounded half-up to whole rupees.
func GST(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}

	return (subtotal*catalog.GSTPercent + 50) / 100
}

func breakdownFor(base, addOnAmount int64) (entity.PriceBreakdown, error) {
	subtotal := base + addOnAmount
	gst := GST(subtotal)
	total := subtotal + gst
	if total <= 0 {
		return entity.PriceBreakdown{}, ErrNonPositiveTotal
	}

	return entity.PriceBreakdown{
		BasePrice:   base,
		AddOnAmount: addOnAmount,
		Subtotal:    subtotal,
		GST:         gst,
		Total:       total,
	}, nil
}
