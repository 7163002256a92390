package response

import (
	"time"

	"lasercraft/internal/domain/entities"
)

type QuoteResponse struct {
	QuoteID          string    `json:"quote_id"`
	MaterialTypeID   string    `json:"material_type_id"`
	Length           float64   `json:"length"`
	Width            float64   `json:"width"`
	Quantity         int       `json:"quantity"`
	ExtraServiceIDs  []string  `json:"extra_service_ids,omitempty"`
	MaterialSubtotal float64   `json:"material_subtotal"`
	ExtrasSubtotal   float64   `json:"extras_subtotal"`
	Total            float64   `json:"total"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:          q.ID,
		MaterialTypeID:   q.Request.MaterialTypeID,
		Length:           q.Request.Length,
		Width:            q.Request.Width,
		Quantity:         q.Request.Quantity,
		ExtraServiceIDs:  q.Request.ExtraServiceIDs,
		MaterialSubtotal: q.MaterialSubtotal,
		ExtrasSubtotal:   q.ExtrasSubtotal,
		Total:            q.Total,
		CreatedAt:        q.CreatedAt,
	}
}
