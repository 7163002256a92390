package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"lasercraft/internal/domain/entities"
	"lasercraft/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidMaterialTypeID = errors.New("invalid material type id")
	ErrMaterialTypeNotFound  = errors.New("material type not found")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInsufficientStock     = errors.New("insufficient stock")
)

// OutOfBoundsError reports which dimension and which bound a requested cut
// violated, with the error margin already applied to the bound.
type OutOfBoundsError struct {
	Dimension string // "length" or "width"
	Requested float64
	Bound     float64
	Limit     string // "min" or "max"
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cut %s %v violates %s bound %v", e.Dimension, e.Requested, e.Limit, e.Bound)
}

// UnknownExtraError reports a selected extra service id that is not present or
// not active in the registry snapshot the quote was computed against.
type UnknownExtraError struct {
	ExtraID string
}

func (e *UnknownExtraError) Error() string {
	return fmt.Sprintf("unknown or inactive extra service %q", e.ExtraID)
}

// ComputeQuote prices a validated cut request against a material type and a
// snapshot of active extras. It is pure: no I/O, no stock mutation, and
// identical inputs always produce identical totals.
//
// Validation order (first failure wins):
//  1. quantity >= 1
//  2. quantity <= stock
//  3. length, then width, inside [min*(1-margin), max*(1+margin)]
//  4. every selected extra id exists in the active snapshot
func ComputeQuote(mt entities.MaterialType, req entities.CutRequest, activeExtras []entities.ExtraService) (entities.Quote, error) {
	if req.Quantity < 1 {
		return entities.Quote{}, ErrInvalidQuantity
	}
	if req.Quantity > mt.Stock {
		return entities.Quote{}, ErrInsufficientStock
	}

	if minL, maxL := mt.LengthBounds(); req.Length < minL {
		return entities.Quote{}, &OutOfBoundsError{Dimension: "length", Requested: req.Length, Bound: minL, Limit: "min"}
	} else if req.Length > maxL {
		return entities.Quote{}, &OutOfBoundsError{Dimension: "length", Requested: req.Length, Bound: maxL, Limit: "max"}
	}
	if minW, maxW := mt.WidthBounds(); req.Width < minW {
		return entities.Quote{}, &OutOfBoundsError{Dimension: "width", Requested: req.Width, Bound: minW, Limit: "min"}
	} else if req.Width > maxW {
		return entities.Quote{}, &OutOfBoundsError{Dimension: "width", Requested: req.Width, Bound: maxW, Limit: "max"}
	}

	byID := make(map[string]entities.ExtraService, len(activeExtras))
	for _, ex := range activeExtras {
		if ex.IsActive {
			byID[ex.ID] = ex
		}
	}

	extrasSubtotal := 0.0
	selected := req.NormalizedExtraIDs()
	for _, id := range selected {
		ex, ok := byID[id]
		if !ok {
			return entities.Quote{}, &UnknownExtraError{ExtraID: id}
		}
		// Extras price the job, not the piece; no quantity scaling.
		extrasSubtotal += ex.Price
	}

	materialSubtotal := mt.PricePerUnit * float64(req.Quantity)
	req.ExtraServiceIDs = selected

	return entities.Quote{
		Request:          req,
		MaterialSubtotal: materialSubtotal,
		ExtrasSubtotal:   extrasSubtotal,
		Total:            materialSubtotal + extrasSubtotal,
	}, nil
}

// IQuoteUseCase exposes the quoting operations.
//
//   - RequestQuote: snapshot catalog + registry, validate and price a request
//   - ListMaterials: catalog browse view, types ordered by thickness

type IQuoteUseCase interface {
	RequestQuote(ctx context.Context, req entities.CutRequest) (entities.Quote, error)
	ListMaterials(ctx context.Context) ([]entities.Material, error)
}

type QuoteUseCase struct {
	catalog interfaces.IMaterialCatalogRepository
	extras  interfaces.IExtrasRegistryRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(catalog interfaces.IMaterialCatalogRepository, extras interfaces.IExtrasRegistryRepository) *QuoteUseCase {
	return &QuoteUseCase{catalog: catalog, extras: extras}
}

func (u *QuoteUseCase) RequestQuote(ctx context.Context, req entities.CutRequest) (entities.Quote, error) {
	req.MaterialTypeID = strings.TrimSpace(req.MaterialTypeID)
	if req.MaterialTypeID == "" {
		return entities.Quote{}, ErrInvalidMaterialTypeID
	}

	mt, err := u.catalog.GetMaterialTypeByID(ctx, req.MaterialTypeID)
	if err != nil {
		return entities.Quote{}, err
	}
	if mt.ID == "" {
		return entities.Quote{}, ErrMaterialTypeNotFound
	}
	if err := mt.Validate(); err != nil {
		return entities.Quote{}, err
	}

	var activeExtras []entities.ExtraService
	if len(req.NormalizedExtraIDs()) > 0 {
		activeExtras, err = u.extras.ListActive(ctx)
		if err != nil {
			return entities.Quote{}, err
		}
	}

	q, err := ComputeQuote(mt, req, activeExtras)
	if err != nil {
		return entities.Quote{}, err
	}

	q.ID = uuid.NewString()
	q.CreatedAt = time.Now().UTC()
	return q, nil
}

func (u *QuoteUseCase) ListMaterials(ctx context.Context) ([]entities.Material, error) {
	materials, err := u.catalog.ListMaterials(ctx)
	if err != nil {
		return nil, err
	}
	for i := range materials {
		ts := materials[i].Types
		sort.SliceStable(ts, func(a, b int) bool { return ts[a].Height < ts[b].Height })
	}
	return materials, nil
}
