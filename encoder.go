package domcmp

import (
	"errors"

	"github.com/pthm/domcmp/lib/dom"
	"github.com/pthm/domcmp/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// NewEncoder creates a payload encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// DecodePayload reads the payload an ActionBuilder attached to el into v.
// A sealed payload takes precedence over a signed one.
//
//	func saveItem(el *dom.Element, c *domcmp.Component) {
//	    var item LineItem
//	    if err := domcmp.DecodePayload(enc, el, &item); err != nil {
//	        return
//	    }
//	}
func DecodePayload(enc *Encoder, el *dom.Element, v any) error {
	if el == nil {
		return ErrNoPayload
	}
	if enc == nil {
		return errors.New("domcmp: decode payload without encoder")
	}
	if raw, ok := el.Data(AttrSealedPayload); ok && raw != "" {
		return wrapEncodingError(enc.Decode(raw, true, v))
	}
	if raw, ok := el.Data(AttrPayload); ok && raw != "" {
		return wrapEncodingError(enc.Decode(raw, false, v))
	}
	return ErrNoPayload
}

// wrapEncodingError maps encoding package errors to domcmp sentinel errors.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return ErrInvalidFormat
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	if errors.Is(err, encoding.ErrDecryptFailed) {
		return ErrDecryptFailed
	}
	return err
}
