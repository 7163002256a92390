package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"lasercraft/internal/domain/entities"
	mock_interfaces "lasercraft/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func acrylic3mm() entities.MaterialType {
	return entities.MaterialType{
		ID:           "mt-1",
		MaterialID:   "mat-acrylic",
		Width:        1250,
		Length:       2050,
		Height:       3,
		PricePerUnit: 20,
		MassPerUnit:  9.2,
		Stock:        10,
		ErrorMargin:  0.05,
		MinCutLength: 100,
		MaxCutLength: 1000,
		MinCutWidth:  50,
		MaxCutWidth:  600,
	}
}

func TestComputeQuote(t *testing.T) {
	t.Run("prices material times quantity", func(t *testing.T) {
		q, err := ComputeQuote(acrylic3mm(), entities.CutRequest{MaterialTypeID: "mt-1", Length: 950, Width: 400, Quantity: 3}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.MaterialSubtotal != 60 || q.ExtrasSubtotal != 0 || q.Total != 60 {
			t.Fatalf("unexpected totals: %+v", q)
		}
	})

	t.Run("adds flat extras without quantity scaling", func(t *testing.T) {
		extras := []entities.ExtraService{
			{ID: "ex-polish", Name: "Edge polishing", Price: 15, Unit: "per project", IsActive: true},
			{ID: "ex-rush", Name: "Rush handling", Price: 30, Unit: "per order", IsActive: true},
		}
		req := entities.CutRequest{MaterialTypeID: "mt-1", Length: 500, Width: 400, Quantity: 4, ExtraServiceIDs: []string{"ex-polish", "ex-rush"}}

		q, err := ComputeQuote(acrylic3mm(), req, extras)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.MaterialSubtotal != 80 || q.ExtrasSubtotal != 45 || q.Total != 125 {
			t.Fatalf("unexpected totals: %+v", q)
		}
	})

	t.Run("duplicate extra ids charge once", func(t *testing.T) {
		extras := []entities.ExtraService{{ID: "ex-polish", Price: 15, IsActive: true}}
		req := entities.CutRequest{MaterialTypeID: "mt-1", Length: 500, Width: 400, Quantity: 1, ExtraServiceIDs: []string{"ex-polish", "ex-polish", " ex-polish "}}

		q, err := ComputeQuote(acrylic3mm(), req, extras)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ExtrasSubtotal != 15 {
			t.Fatalf("expected extras subtotal 15, got %v", q.ExtrasSubtotal)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		req := entities.CutRequest{MaterialTypeID: "mt-1", Length: 950, Width: 400, Quantity: 3}
		a, err := ComputeQuote(acrylic3mm(), req, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := ComputeQuote(acrylic3mm(), req, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a.Total != b.Total || a.MaterialSubtotal != b.MaterialSubtotal || a.ExtrasSubtotal != b.ExtrasSubtotal {
			t.Fatalf("expected identical totals: %+v vs %+v", a, b)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := ComputeQuote(acrylic3mm(), entities.CutRequest{MaterialTypeID: "mt-1", Length: 500, Width: 400, Quantity: 0}, nil)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("quantity over stock", func(t *testing.T) {
		_, err := ComputeQuote(acrylic3mm(), entities.CutRequest{MaterialTypeID: "mt-1", Length: 500, Width: 400, Quantity: 11}, nil)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	t.Run("quantity check wins over bounds check", func(t *testing.T) {
		// Both violated; the quantity error is reported.
		_, err := ComputeQuote(acrylic3mm(), entities.CutRequest{MaterialTypeID: "mt-1", Length: 5000, Width: 400, Quantity: 0}, nil)
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("length above margin-widened max", func(t *testing.T) {
		// 1060 > 1000*1.05 = 1050
		_, err := ComputeQuote(acrylic3mm(), entities.CutRequest{MaterialTypeID: "mt-1", Length: 1060, Width: 400, Quantity: 3}, nil)
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("expected OutOfBoundsError, got %v", err)
		}
		if oob.Dimension != "length" || oob.Limit != "max" || oob.Bound != 1050 {
			t.Fatalf("unexpected violation: %+v", oob)
		}
	})

	t.Run("length exactly on the widened bound passes", func(t *testing.T) {
		_, err := ComputeQuote(acrylic3mm(), entities.CutRequest{MaterialTypeID: "mt-1", Length: 1000 * 1.05, Width: 400, Quantity: 1}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("length just past the widened bound fails", func(t *testing.T) {
		over := math.Nextafter(1000*1.05, math.MaxFloat64)
		_, err := ComputeQuote(acrylic3mm(), entities.CutRequest{MaterialTypeID: "mt-1", Length: over, Width: 400, Quantity: 1}, nil)
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("expected OutOfBoundsError, got %v", err)
		}
	})

	t.Run("length below margin-narrowed min", func(t *testing.T) {
		// 94 < 100*0.95 = 95
		_, err := ComputeQuote(acrylic3mm(), entities.CutRequest{MaterialTypeID: "mt-1", Length: 94, Width: 400, Quantity: 1}, nil)
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("expected OutOfBoundsError, got %v", err)
		}
		if oob.Dimension != "length" || oob.Limit != "min" {
			t.Fatalf("unexpected violation: %+v", oob)
		}
	})

	t.Run("width out of bounds", func(t *testing.T) {
		_, err := ComputeQuote(acrylic3mm(), entities.CutRequest{MaterialTypeID: "mt-1", Length: 500, Width: 700, Quantity: 1}, nil)
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("expected OutOfBoundsError, got %v", err)
		}
		if oob.Dimension != "width" || oob.Limit != "max" {
			t.Fatalf("unexpected violation: %+v", oob)
		}
	})

	t.Run("unknown extra id", func(t *testing.T) {
		req := entities.CutRequest{MaterialTypeID: "mt-1", Length: 500, Width: 400, Quantity: 1, ExtraServiceIDs: []string{"ex-nope"}}
		_, err := ComputeQuote(acrylic3mm(), req, nil)
		var unknown *UnknownExtraError
		if !errors.As(err, &unknown) {
			t.Fatalf("expected UnknownExtraError, got %v", err)
		}
		if unknown.ExtraID != "ex-nope" {
			t.Fatalf("unexpected extra id: %q", unknown.ExtraID)
		}
	})

	t.Run("inactive extra in snapshot is unknown", func(t *testing.T) {
		extras := []entities.ExtraService{{ID: "ex-old", Price: 10, IsActive: false}}
		req := entities.CutRequest{MaterialTypeID: "mt-1", Length: 500, Width: 400, Quantity: 1, ExtraServiceIDs: []string{"ex-old"}}
		_, err := ComputeQuote(acrylic3mm(), req, extras)
		var unknown *UnknownExtraError
		if !errors.As(err, &unknown) {
			t.Fatalf("expected UnknownExtraError, got %v", err)
		}
	})
}

func TestQuoteUseCase_RequestQuote(t *testing.T) {
	t.Run("invalid material type id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil)
		_, err := uc.RequestQuote(context.Background(), entities.CutRequest{MaterialTypeID: "   "})
		if !errors.Is(err, ErrInvalidMaterialTypeID) {
			t.Fatalf("expected ErrInvalidMaterialTypeID, got %v", err)
		}
	})

	t.Run("catalog error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIMaterialCatalogRepository(ctrl)
		uc := NewQuoteUseCase(catalog, nil)

		catalog.EXPECT().GetMaterialTypeByID(gomock.Any(), "mt-1").Return(entities.MaterialType{}, errors.New("db"))

		_, err := uc.RequestQuote(context.Background(), entities.CutRequest{MaterialTypeID: "mt-1", Quantity: 1})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("material type not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIMaterialCatalogRepository(ctrl)
		uc := NewQuoteUseCase(catalog, nil)

		catalog.EXPECT().GetMaterialTypeByID(gomock.Any(), "mt-404").Return(entities.MaterialType{}, nil)

		_, err := uc.RequestQuote(context.Background(), entities.CutRequest{MaterialTypeID: "mt-404", Quantity: 1})
		if !errors.Is(err, ErrMaterialTypeNotFound) {
			t.Fatalf("expected ErrMaterialTypeNotFound, got %v", err)
		}
	})

	t.Run("no extras skips registry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIMaterialCatalogRepository(ctrl)
		extras := mock_interfaces.NewMockIExtrasRegistryRepository(ctrl)
		uc := NewQuoteUseCase(catalog, extras)

		catalog.EXPECT().GetMaterialTypeByID(gomock.Any(), "mt-1").Return(acrylic3mm(), nil)

		q, err := uc.RequestQuote(context.Background(), entities.CutRequest{MaterialTypeID: "mt-1", Length: 950, Width: 400, Quantity: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ID == "" || q.CreatedAt.IsZero() {
			t.Fatalf("expected generated id and timestamp: %+v", q)
		}
		if q.Total != 60 {
			t.Fatalf("expected total 60, got %v", q.Total)
		}
	})

	t.Run("extras fetched and priced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIMaterialCatalogRepository(ctrl)
		extras := mock_interfaces.NewMockIExtrasRegistryRepository(ctrl)
		uc := NewQuoteUseCase(catalog, extras)

		catalog.EXPECT().GetMaterialTypeByID(gomock.Any(), "mt-1").Return(acrylic3mm(), nil)
		extras.EXPECT().ListActive(gomock.Any()).Return([]entities.ExtraService{{ID: "ex-polish", Price: 15, IsActive: true}}, nil)

		req := entities.CutRequest{MaterialTypeID: " mt-1 ", Length: 500, Width: 400, Quantity: 2, ExtraServiceIDs: []string{"ex-polish"}}
		q, err := uc.RequestQuote(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Total != 55 {
			t.Fatalf("expected total 55, got %v", q.Total)
		}
	})

	t.Run("registry error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIMaterialCatalogRepository(ctrl)
		extras := mock_interfaces.NewMockIExtrasRegistryRepository(ctrl)
		uc := NewQuoteUseCase(catalog, extras)

		catalog.EXPECT().GetMaterialTypeByID(gomock.Any(), "mt-1").Return(acrylic3mm(), nil)
		extras.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db"))

		req := entities.CutRequest{MaterialTypeID: "mt-1", Length: 500, Width: 400, Quantity: 1, ExtraServiceIDs: []string{"ex-polish"}}
		_, err := uc.RequestQuote(context.Background(), req)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("corrupt catalog record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIMaterialCatalogRepository(ctrl)
		uc := NewQuoteUseCase(catalog, nil)

		bad := acrylic3mm()
		bad.MaxCutLength = 50 // below MinCutLength
		catalog.EXPECT().GetMaterialTypeByID(gomock.Any(), "mt-1").Return(bad, nil)

		_, err := uc.RequestQuote(context.Background(), entities.CutRequest{MaterialTypeID: "mt-1", Length: 500, Width: 400, Quantity: 1})
		if !errors.Is(err, entities.ErrInvalidMaterialType) {
			t.Fatalf("expected ErrInvalidMaterialType, got %v", err)
		}
	})
}

func TestQuoteUseCase_ListMaterials(t *testing.T) {
	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIMaterialCatalogRepository(ctrl)
		uc := NewQuoteUseCase(catalog, nil)

		catalog.EXPECT().ListMaterials(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.ListMaterials(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("types sorted by thickness", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockIMaterialCatalogRepository(ctrl)
		uc := NewQuoteUseCase(catalog, nil)

		catalog.EXPECT().ListMaterials(gomock.Any()).Return([]entities.Material{
			{ID: "mat-1", Name: "Acrylic", Types: []entities.MaterialType{
				{ID: "mt-6", Height: 6},
				{ID: "mt-3", Height: 3},
				{ID: "mt-10", Height: 10},
			}},
		}, nil)

		materials, err := uc.ListMaterials(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := materials[0].Types
		if got[0].ID != "mt-3" || got[1].ID != "mt-6" || got[2].ID != "mt-10" {
			t.Fatalf("expected ascending thickness, got %+v", got)
		}
	})
}
