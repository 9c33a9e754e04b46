package e

import (
	"fmt"
	"sort"
	"strings"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки контекста пользователя и арендатора
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrNoVendor         = fmt.Errorf("no vendor found")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrInvalidID            = fmt.Errorf("invalid id")
	ErrInvalidJSON          = fmt.Errorf("invalid json body")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrInvalidPrice         = fmt.Errorf("price must be a valid number")
	ErrPriceMustBePositive  = fmt.Errorf("price must be a valid number greater than 0")
	ErrPriceScale           = fmt.Errorf("price must have at most 2 decimal places")
	ErrCategoryRequired     = fmt.Errorf("product category is required")
	ErrInvalidTaxRate       = fmt.Errorf("tax rate must be between 0 and 100")
	ErrInvalidImage         = fmt.Errorf("image must be a base64 data uri")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrImageTooLarge        = fmt.Errorf("image is too large, max size 5MB")
	ErrCategoryNameEmpty    = fmt.Errorf("category name must not be empty")
	ErrInvoiceRequired      = fmt.Errorf("invoice is required")

	// 404 Not Found
	ErrCustomerNotFound = fmt.Errorf("customer not found")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrInvoiceNotFound  = fmt.Errorf("invoice not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")

	// 409 Conflict
	ErrCategoryExists = fmt.Errorf("category already exists")
	ErrLastCategory   = fmt.Errorf("at least one category must remain")

	// 428 Precondition Required
	ErrDeleteNotConfirmed = fmt.Errorf("delete must be confirmed")

	// 503 Service Unavailable
	ErrStorageUnavailable = fmt.Errorf("storage is not available")

	// 500 Internal Server Error
	ErrInternalServerError    = fmt.Errorf("internal server error")
	ErrInvoiceNotCreated      = fmt.Errorf("invoice could not be created")
	ErrInvoiceItemsNotCreated = fmt.Errorf("invoice items could not be created")
	ErrDocumentNotRendered    = fmt.Errorf("invoice document could not be rendered")
)

// ValidationError содержит сообщения об ошибках по каждому полю формы.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v.Fields[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// Generic оборачивает внутреннюю ошибку в общую, скрывая детали от клиента,
// но сохраняя обе в цепочке для errors.Is.
func Generic(generic error, cause error) error {
	return fmt.Errorf("%w: %w", generic, cause)
}
