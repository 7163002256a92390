package request

import "lasercraft/internal/domain/entities"

// CutQuoteRequest is the client payload for quoting a cut job. Quantity has
// no `required` binding on purpose: zero must reach the use case and come
// back as an invalid-quantity domain error, not a generic binding failure.
type CutQuoteRequest struct {
	MaterialTypeID  string   `json:"material_type_id" binding:"required"`
	Length          float64  `json:"length" binding:"required"`
	Width           float64  `json:"width" binding:"required"`
	Quantity        int      `json:"quantity"`
	ExtraServiceIDs []string `json:"extra_service_ids"`
}

func (r CutQuoteRequest) ToCutRequest() entities.CutRequest {
	return entities.CutRequest{
		MaterialTypeID:  r.MaterialTypeID,
		Length:          r.Length,
		Width:           r.Width,
		Quantity:        r.Quantity,
		ExtraServiceIDs: r.ExtraServiceIDs,
	}
}
