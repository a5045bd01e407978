package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeAuthRequired      = "AUTHENTICATION_REQUIRED"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeCountryNotFound   = "COUNTRY_NOT_FOUND"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeBelowMOQ          = "BELOW_MINIMUM_QUANTITY"
	ErrCodeStockExceeded     = "STOCK_EXCEEDED"
	ErrCodeInvalidPrice      = "INVALID_PRICE"
	ErrCodeInvalidMOQ        = "INVALID_MOQ"
	ErrCodeInvalidTransition = "INVALID_STATUS_TRANSITION"
	ErrCodePaymentDeclined   = "PAYMENT_DECLINED"
	ErrCodeDuplicateRequest  = "DUPLICATE_REQUEST"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	// ErrAuthRequired is the redirect-to-login signal: a mutating operation
	// was invoked without an authenticated session.
	ErrAuthRequired      = NewDomainError(ErrCodeAuthRequired, "Operation requires an authenticated user")
	ErrProductNotFound   = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrCountryNotFound   = NewDomainError(ErrCodeCountryNotFound, "Country not found")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrBelowMOQ          = NewDomainError(ErrCodeBelowMOQ, "Quantity is below the product's minimum order quantity")
	ErrStockExceeded     = NewDomainError(ErrCodeStockExceeded, "Quantity exceeds available stock")
	ErrInvalidTransition = NewDomainError(ErrCodeInvalidTransition, "Order status cannot transition backwards")
	ErrPaymentDeclined   = NewDomainError(ErrCodePaymentDeclined, "Payment was declined by the gateway")
	ErrDuplicateRequest  = NewDomainError(ErrCodeDuplicateRequest, "An identical checkout request is already in flight")
	ErrEmptyCart         = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
)
