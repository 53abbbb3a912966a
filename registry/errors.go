package registry

import "errors"

// Operation failures visible to callers. A failed operation never applies
// any of its effects; the caller decides whether to retry.
var (
	ErrDuplicateKey    = errors.New("business key already registered")
	ErrNotFound        = errors.New("record not found")
	ErrNotMinted       = errors.New("record has no token assigned")
	ErrInvalidState    = errors.New("operation not allowed in current status")
	ErrUnauthorized    = errors.New("caller not authorized")
	ErrInvalidPrice    = errors.New("listing price must be positive")
	ErrPaymentMismatch = errors.New("payment does not match the listed price")
	ErrSelfPurchase    = errors.New("owner cannot buy their own token")
)
