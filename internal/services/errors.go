package services

import "fmt"

// ErrorKind classifies a DomainError so the HTTP layer can pick a status
// without inspecting codes.
type ErrorKind string

const (
	KindValidation    ErrorKind = "validation"
	KindNotFound      ErrorKind = "not_found"
	KindAuthorization ErrorKind = "authorization"
	KindConflict      ErrorKind = "conflict"
	KindInternal      ErrorKind = "internal"
)

// Stable machine-readable error codes surfaced to API clients.
const (
	CodeMalformedPayload      = "MALFORMED_PAYLOAD"
	CodeInsufficientImages    = "INSUFFICIENT_IMAGES"
	CodeTooManyImages         = "TOO_MANY_IMAGES"
	CodeDiscountFieldMismatch = "DISCOUNT_FIELD_MISMATCH"
	CodeNotADealer            = "NOT_A_DEALER"
	CodeNoDealership          = "NO_DEALERSHIP"
	CodeBranchRequired        = "BRANCH_REQUIRED"
	CodeBranchNotOwned        = "BRANCH_NOT_OWNED"
	CodeDuplicateBrand        = "DUPLICATE_BRAND"
	CodeDuplicateVariant      = "DUPLICATE_VARIANT"
	CodeBrandNotFound         = "BRAND_NOT_FOUND"
	CodeVariantNotFound       = "VARIANT_NOT_FOUND"
	CodeListingNotFound       = "LISTING_NOT_FOUND"
	CodeNotOwner              = "NOT_OWNER"
	CodeNotAuthorized         = "NOT_AUTHORIZED"
	CodeAlreadyWishlisted     = "ALREADY_WISHLISTED"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeBookingNotFound       = "BOOKING_NOT_FOUND"
	CodeBranchNotFound        = "BRANCH_NOT_FOUND"
	CodeNotificationNotFound  = "NOTIFICATION_NOT_FOUND"
)

// DomainError is the error type services return for expected failures. Field
// is set when the error is tied to a single payload field.
type DomainError struct {
	Kind    ErrorKind
	Code    string
	Field   string
	Message string
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(code, field, message string) *DomainError {
	return &DomainError{Kind: KindValidation, Code: code, Field: field, Message: message}
}

func NewNotFoundError(code, message string) *DomainError {
	return &DomainError{Kind: KindNotFound, Code: code, Message: message}
}

func NewAuthorizationError(code, message string) *DomainError {
	return &DomainError{Kind: KindAuthorization, Code: code, Message: message}
}

func NewConflictError(code, message string) *DomainError {
	return &DomainError{Kind: KindConflict, Code: code, Message: message}
}
