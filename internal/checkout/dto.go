package checkout

// CheckoutRequest collects the shipping and contact fields for placing an
// order. Payment is settled offline, so nothing else is required.
type CheckoutRequest struct {
	Phone   string  `json:"phone" validate:"required,min=6"`
	Address string  `json:"address" validate:"required,min=5"`
	Notes   *string `json:"notes" validate:"omitempty,max=500"`
}
