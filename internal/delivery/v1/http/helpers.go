package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/DRSN-tech/billing-backend/internal/usecase"
	"github.com/DRSN-tech/billing-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxBodySize — ограничение тела запроса (data URI изображения до 5MB в base64 плюс поля)
const maxBodySize = 8 << 20

type ErrorResponse struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse сопоставляет ошибку кода HTTP и сообщение для клиента.
// Неизвестные ошибки скрываются за 500.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrNotAuthenticated):
		return http.StatusUnauthorized, e.ErrNotAuthenticated.Error()
	case errors.Is(err, e.ErrNoVendor):
		return http.StatusForbidden, e.ErrNoVendor.Error()

	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrInvalidID):
		return http.StatusBadRequest, e.ErrInvalidID.Error()
	case errors.Is(err, e.ErrInvalidJSON):
		return http.StatusBadRequest, e.ErrInvalidJSON.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPriceMustBePositive):
		return http.StatusBadRequest, e.ErrPriceMustBePositive.Error()
	case errors.Is(err, e.ErrPriceScale):
		return http.StatusBadRequest, e.ErrPriceScale.Error()
	case errors.Is(err, e.ErrCategoryRequired):
		return http.StatusBadRequest, e.ErrCategoryRequired.Error()
	case errors.Is(err, e.ErrInvalidTaxRate):
		return http.StatusBadRequest, e.ErrInvalidTaxRate.Error()
	case errors.Is(err, e.ErrInvalidImage):
		return http.StatusBadRequest, e.ErrInvalidImage.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge, e.ErrImageTooLarge.Error()
	case errors.Is(err, e.ErrCategoryNameEmpty):
		return http.StatusBadRequest, e.ErrCategoryNameEmpty.Error()
	case errors.Is(err, e.ErrInvoiceRequired):
		return http.StatusBadRequest, e.ErrInvoiceRequired.Error()

	case errors.Is(err, e.ErrCustomerNotFound):
		return http.StatusNotFound, e.ErrCustomerNotFound.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrInvoiceNotFound):
		return http.StatusNotFound, e.ErrInvoiceNotFound.Error()
	case errors.Is(err, e.ErrCategoryNotFound):
		return http.StatusNotFound, e.ErrCategoryNotFound.Error()

	case errors.Is(err, e.ErrCategoryExists):
		return http.StatusConflict, e.ErrCategoryExists.Error()
	case errors.Is(err, e.ErrLastCategory):
		return http.StatusConflict, e.ErrLastCategory.Error()
	case errors.Is(err, usecase.ErrFormClosed):
		return http.StatusConflict, usecase.ErrFormClosed.Error()

	case errors.Is(err, e.ErrDeleteNotConfirmed):
		return http.StatusPreconditionRequired, e.ErrDeleteNotConfirmed.Error()

	case errors.Is(err, e.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, e.ErrStorageUnavailable.Error()

	case errors.Is(err, e.ErrInvoiceNotCreated):
		return http.StatusInternalServerError, e.ErrInvoiceNotCreated.Error()
	case errors.Is(err, e.ErrInvoiceItemsNotCreated):
		return http.StatusInternalServerError, e.ErrInvoiceItemsNotCreated.Error()
	case errors.Is(err, e.ErrDocumentNotRendered):
		return http.StatusInternalServerError, e.ErrDocumentNotRendered.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	var verr *e.ValidationError
	if errors.As(err, &verr) {
		resp := NewErrorResponse(http.StatusBadRequest, "validation failed")
		resp.Fields = verr.Fields
		WriteSuccess(w, http.StatusBadRequest, resp)
		return
	}

	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON читает тело запроса в dst. Неизвестные поля игнорируются.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return e.Wrap("request body", e.ErrImageTooLarge)
		}
		if errors.Is(err, io.EOF) {
			return e.Wrap("empty body", e.ErrInvalidJSON)
		}
		return e.Generic(e.ErrInvalidJSON, err)
	}

	return nil
}

func parseIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, e.Generic(e.ErrInvalidID, err)
	}
	return id, nil
}

// parseDecimal разбирает число из формы. Пустая строка и мусор дают nil,
// решение об ошибке принимает валидация.
func parseDecimal(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// parseAmount разбирает обязательную сумму счёта.
func parseAmount(s string, field string) (decimal.Decimal, error) {
	d := parseDecimal(s)
	if d == nil {
		return decimal.Zero, e.NewValidationError(map[string]string{field: "must be a valid number"})
	}
	return *d, nil
}
