package entities

import (
	"strings"
	"time"
)

// CutRequest is the client's input for quoting: which material type, the
// requested piece geometry, how many pieces, and which optional extras.
// It is not persisted on its own; an accepted quote carries it into the order.
type CutRequest struct {
	MaterialTypeID  string   `json:"material_type_id"`
	Length          float64  `json:"length"`
	Width           float64  `json:"width"`
	Quantity        int      `json:"quantity"`
	ExtraServiceIDs []string `json:"extra_service_ids"`
}

// NormalizedExtraIDs returns the selected extra ids trimmed and de-duplicated,
// preserving first-seen order. Selecting the same extra twice charges it once.
func (r CutRequest) NormalizedExtraIDs() []string {
	if len(r.ExtraServiceIDs) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(r.ExtraServiceIDs))
	out := make([]string, 0, len(r.ExtraServiceIDs))
	for _, id := range r.ExtraServiceIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Quote is a priced, validated response to a CutRequest. It is immutable once
// produced and it is not a reservation: stock is untouched at quote time.
type Quote struct {
	ID               string     `json:"id"`
	Request          CutRequest `json:"request"`
	MaterialSubtotal float64    `json:"material_subtotal"`
	ExtrasSubtotal   float64    `json:"extras_subtotal"`
	Total            float64    `json:"total"`
	CreatedAt        time.Time  `json:"created_at"`
}
