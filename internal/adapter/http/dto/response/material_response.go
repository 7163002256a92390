package response

import "lasercraft/internal/domain/entities"

type MaterialTypeResponse struct {
	ID           string  `json:"id"`
	Width        float64 `json:"width"`
	Length       float64 `json:"length"`
	Height       float64 `json:"height"`
	PricePerUnit float64 `json:"price_per_unit"`
	MassPerUnit  float64 `json:"mass_per_unit"`
	Stock        int     `json:"stock"`
	ErrorMargin  float64 `json:"error_margin"`
	MinCutLength float64 `json:"min_cut_length"`
	MaxCutLength float64 `json:"max_cut_length"`
	MinCutWidth  float64 `json:"min_cut_width"`
	MaxCutWidth  float64 `json:"max_cut_width"`
}

type MaterialResponse struct {
	ID    string                 `json:"id"`
	Name  string                 `json:"name"`
	Types []MaterialTypeResponse `json:"types"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	out := MaterialResponse{ID: m.ID, Name: m.Name, Types: make([]MaterialTypeResponse, 0, len(m.Types))}
	for _, mt := range m.Types {
		out.Types = append(out.Types, MaterialTypeResponse{
			ID:           mt.ID,
			Width:        mt.Width,
			Length:       mt.Length,
			Height:       mt.Height,
			PricePerUnit: mt.PricePerUnit,
			MassPerUnit:  mt.MassPerUnit,
			Stock:        mt.Stock,
			ErrorMargin:  mt.ErrorMargin,
			MinCutLength: mt.MinCutLength,
			MaxCutLength: mt.MaxCutLength,
			MinCutWidth:  mt.MinCutWidth,
			MaxCutWidth:  mt.MaxCutWidth,
		})
	}
	return out
}

func FromMaterials(ms []entities.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMaterial(m))
	}
	return out
}
