package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "window_quotation/internal/adapter/http/dto/request"
	response "window_quotation/internal/adapter/http/dto/response"
	"window_quotation/internal/domain/entities"
	"window_quotation/internal/domain/pricing"
	"window_quotation/internal/usecase"
	"window_quotation/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
	errInvalidWindowPayload    = pkg.NewDomainErrorSimple("INVALID_WINDOW_INPUT", "Invalid window payload", http.StatusBadRequest)
	errInvalidPricingPayload   = pkg.NewDomainErrorSimple("INVALID_PRICING_INPUT", "Invalid pricing payload", http.StatusBadRequest)
	errInvalidStatusPayload    = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)
)

// QuotationHandler exposes the quotation editing session over HTTP.
//
// Window routes take the window id from the path; "active" addresses the
// currently active window.
type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) CreateQuotation(c *gin.Context) {
	var payload request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, quotationResponse(q))
}

func (h *QuotationHandler) GetQuotation(c *gin.Context) {
	q, err := h.usecase.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, quotationResponse(q))
}

func (h *QuotationHandler) AddWindow(c *gin.Context) {
	var payload request.AddWindowRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidWindowPayload.HTTPStatus, errInvalidWindowPayload.ToHTTPError())
			return
		}
	}
	archetype, err := payload.ResolveArchetype()
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	w, err := h.usecase.AddWindow(c.Request.Context(), c.Param("number"), archetype)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWindow(w))
}

func (h *QuotationHandler) RemoveWindow(c *gin.Context) {
	q, err := h.usecase.RemoveWindow(c.Request.Context(), c.Param("number"), windowParam(c))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, quotationResponse(q))
}

func (h *QuotationHandler) DuplicateWindow(c *gin.Context) {
	w, err := h.usecase.DuplicateWindow(c.Request.Context(), c.Param("number"), windowParam(c))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromWindow(w))
}

func (h *QuotationHandler) RenameWindow(c *gin.Context) {
	var payload request.RenameWindowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWindowPayload.HTTPStatus, errInvalidWindowPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.RenameWindow(c.Request.Context(), c.Param("number"), windowParam(c), payload.Name)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWindow(w))
}

func (h *QuotationHandler) SetActiveWindow(c *gin.Context) {
	var payload request.ActiveWindowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWindowPayload.HTTPStatus, errInvalidWindowPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.SetActiveWindow(c.Request.Context(), c.Param("number"), payload.WindowID)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, quotationResponse(q))
}

func (h *QuotationHandler) UpdateSpec(c *gin.Context) {
	var payload request.WindowSpecRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWindowPayload.HTTPStatus, errInvalidWindowPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.UpdateSpec(c.Request.Context(), c.Param("number"), windowParam(c), payload.ToSpec())
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWindow(w))
}

func (h *QuotationHandler) UpdateConfiguration(c *gin.Context) {
	var payload request.ConfigurationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWindowPayload.HTTPStatus, errInvalidWindowPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	w, err := h.usecase.UpdateConfiguration(c.Request.Context(), c.Param("number"), windowParam(c), in)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWindow(w))
}

func (h *QuotationHandler) SetPricingOverride(c *gin.Context) {
	var payload request.PricingOverrideRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}
	field, err := payload.ResolveField()
	if err != nil {
		c.JSON(errInvalidPricingPayload.HTTPStatus, errInvalidPricingPayload.ToHTTPError())
		return
	}

	w, err := h.usecase.SetPricingOverride(c.Request.Context(), c.Param("number"), windowParam(c), field, *payload.Value)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWindow(w))
}

func (h *QuotationHandler) AutoPopulatePricing(c *gin.Context) {
	w, err := h.usecase.AutoPopulatePricing(c.Request.Context(), c.Param("number"), windowParam(c))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWindow(w))
}

func (h *QuotationHandler) GetTotals(c *gin.Context) {
	totals, err := h.usecase.Totals(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *QuotationHandler) GetScene(c *gin.Context) {
	scene, err := h.usecase.Scene(c.Request.Context(), c.Param("number"), windowParam(c))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, scene)
}

func (h *QuotationHandler) Validate(c *gin.Context) {
	errs, err := h.usecase.Validate(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromValidation(errs))
}

func (h *QuotationHandler) Submit(c *gin.Context) {
	q, err := h.usecase.Submit(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, quotationResponse(q))
}

func (h *QuotationHandler) SetStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.SetStatus(c.Request.Context(), c.Param("number"), entities.QuotationStatus(payload.Status))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, quotationResponse(q))
}

func (h *QuotationHandler) RenderDiagrams(c *gin.Context) {
	number := c.Param("number")
	doc, err := h.usecase.RenderDiagrams(c.Request.Context(), number)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+strings.TrimSpace(number)+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

// windowParam maps the "active" path segment to the empty id the use case
// reads as the active window.
func windowParam(c *gin.Context) string {
	id := strings.TrimSpace(c.Param("window_id"))
	if id == "active" {
		return ""
	}
	return id
}

func quotationResponse(q entities.Quotation) response.QuotationResponse {
	return response.FromQuotation(q, pricing.Default().Rollup(q))
}

func mapQuotationError(err error) *pkg.AppError {
	var fieldErrs entities.ValidationErrors
	var fieldErr entities.ValidationError
	var violation *entities.InvariantViolation

	switch {
	case errors.As(err, &fieldErrs):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusUnprocessableEntity).WithDetails(fieldErrs)
	case errors.As(err, &fieldErr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Validation failed", http.StatusUnprocessableEntity).
			WithDetails(entities.ValidationErrors{fieldErr})
	case errors.As(err, &violation):
		return pkg.NewDomainErrorSimple("OPERATION_NOT_ALLOWED", violation.Reason, http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWindowNotFound):
		return pkg.NewDomainErrorSimple("WINDOW_NOT_FOUND", "Window not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidQuotationNumber), errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrUnknownArchetype), errors.Is(err, request.ErrUnknownArchetype),
		errors.Is(err, request.ErrMissingConfigType), errors.Is(err, request.ErrEmptyConfigurationOp):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStoreNotConfigured), errors.Is(err, usecase.ErrRendererNotConfigured):
		return pkg.NewDomainError("SERVICE_UNAVAILABLE", "Service not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
