package request

// OrderCreateRequest accepts a quote into an order: the same cut fields the
// quote endpoint takes, plus the chosen payment channel.
type OrderCreateRequest struct {
	CutQuoteRequest
	PaymentMethod string `json:"payment_method" binding:"required"`
}
