package entities

import "errors"

var ErrInvalidMaterialType = errors.New("invalid material type")

// MaterialType is one thickness/variant of a Material.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (material_id-index): material_id
//
// Geometry:
//   - Width/Length/Height describe the raw sheet; Height is the thickness.
//   - MinCut*/MaxCut* bound the cuttable piece; ErrorMargin is a fractional
//     tolerance applied to those bounds at quote time.
//
// Pricing:
//   - PricePerUnit is the price of one finished piece. The catalog already
//     encodes any area/price tradeoff per type, so quoting never applies an
//     area formula.
type MaterialType struct {
	ID           string  `json:"id"`
	MaterialID   string  `json:"material_id"`
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

// Validate checks the catalog invariants. Catalog management owns writes;
// the quote path only ever reads, so a violation here is a data problem,
// not a caller problem.
func (mt MaterialType) Validate() error {
	switch {
	case mt.ID == "":
		return ErrInvalidMaterialType
	case mt.Stock < 0:
		return ErrInvalidMaterialType
	case mt.ErrorMargin < 0:
		return ErrInvalidMaterialType
	case mt.MinCutLength < 0 || mt.MaxCutLength < mt.MinCutLength:
		return ErrInvalidMaterialType
	case mt.MinCutWidth < 0 || mt.MaxCutWidth < mt.MinCutWidth:
		return ErrInvalidMaterialType
	}
	return nil
}

// LengthBounds returns the allowed cut length interval with the error margin
// applied. WidthBounds is the same rule for the other dimension.
func (mt MaterialType) LengthBounds() (min, max float64) {
	return mt.MinCutLength * (1 - mt.ErrorMargin), mt.MaxCutLength * (1 + mt.ErrorMargin)
}

func (mt MaterialType) WidthBounds() (min, max float64) {
	return mt.MinCutWidth * (1 - mt.ErrorMargin), mt.MaxCutWidth * (1 + mt.ErrorMargin)
}

// Material is a named grouping of MaterialTypes. Types are kept ordered by
// ascending thickness for display; the ordering carries no pricing meaning.
type Material struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Types []MaterialType `json:"types"`
}

// ExtraService is a flat-priced optional add-on (e.g. edge polishing,
// engraving setup). Price is per job, not per piece; Unit is a descriptive
// label such as "per project". Only active extras are selectable.
type ExtraService struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Unit     string  `json:"unit"`
	IsActive bool    `json:"is_active"`
}
