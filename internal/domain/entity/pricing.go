package entity

// PriceBreakdown is a computed quote. All amounts are whole rupees.
type PriceBreakdown struct {
	BasePrice   int64 `json:"basePrice"`
	AddOnAmount int64 `json:"addOnAmount"`
	Subtotal    int64 `json:"subtotal"`
	GST         int64 `json:"gst"`
	Total       int64 `json:"total"`
}

// TotalMinorUnits returns the total in paise, the unit the gateway charges in.
func (p PriceBreakdown) TotalMinorUnits() int64 {
	return p.Total * 100
}
