package handlers

import (
	"errors"
	"net/http"

	request "lasercraft/internal/adapter/http/dto/request"
	response "lasercraft/internal/adapter/http/dto/response"
	"lasercraft/internal/usecase"
	"lasercraft/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for cut quoting and catalog browsing.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote prices a cut request against the current catalog snapshot.
// Quoting never reserves stock; the priced quote is accepted into an order
// through the orders endpoint.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CutQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.RequestQuote(c.Request.Context(), payload.ToCutRequest())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListMaterials returns the catalog grouped by material, types ordered by
// ascending thickness.
func (h *QuoteHandler) ListMaterials(c *gin.Context) {
	materials, err := h.usecase.ListMaterials(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaterials(materials))
}

func mapQuoteError(err error) *pkg.AppError {
	var oob *usecase.OutOfBoundsError
	var unknownExtra *usecase.UnknownExtraError

	switch {
	case errors.Is(err, usecase.ErrInvalidMaterialTypeID), errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &oob):
		return pkg.NewDomainError("CUT_OUT_OF_BOUNDS", oob.Error(), err, http.StatusBadRequest)
	case errors.As(err, &unknownExtra):
		return pkg.NewDomainError("UNKNOWN_EXTRA_SERVICE", unknownExtra.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Not enough stock for the requested quantity", http.StatusConflict)
	case errors.Is(err, usecase.ErrMaterialTypeNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_TYPE_NOT_FOUND", "Material type not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
