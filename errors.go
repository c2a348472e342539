package domcmp

import "errors"

// Sentinel errors for engine operations.
var (
	ErrNotFound           = errors.New("domcmp: component not found")
	ErrDuplicateComponent = errors.New("domcmp: duplicate component name")
	ErrInvalidConfig      = errors.New("domcmp: invalid component config")
	ErrMissingSelector    = errors.New("domcmp: component has no selector")
	ErrAlreadyInitialized = errors.New("domcmp: engine already initialized")
	ErrNoPayload          = errors.New("domcmp: element has no payload")
	ErrInvalidFormat      = errors.New("domcmp: invalid payload format")
	ErrSignatureInvalid   = errors.New("domcmp: payload signature verification failed")
	ErrDecryptFailed      = errors.New("domcmp: payload decryption failed")
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicate checks if err reports a name collision at registration.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateComponent)
}

// IsPayloadError checks if err came from reading an action payload.
func IsPayloadError(err error) bool {
	return errors.Is(err, ErrNoPayload) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrSignatureInvalid) ||
		errors.Is(err, ErrDecryptFailed)
}
