package domcmp

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	errs := []error{
		ErrNotFound,
		ErrDuplicateComponent,
		ErrInvalidConfig,
		ErrMissingSelector,
		ErrAlreadyInitialized,
		ErrNoPayload,
		ErrInvalidFormat,
		ErrSignatureInvalid,
		ErrDecryptFailed,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrNotFound", ErrNotFound, true},
		{"wrapped ErrNotFound", fmt.Errorf("wrapped: %w", ErrNotFound), true},
		{"other error", errors.New("other error"), false},
		{"ErrDuplicateComponent", ErrDuplicateComponent, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.expect {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.expect)
			}
		})
	}
}

func TestIsPayloadError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrNoPayload", ErrNoPayload, true},
		{"ErrInvalidFormat", ErrInvalidFormat, true},
		{"ErrSignatureInvalid", ErrSignatureInvalid, true},
		{"wrapped ErrDecryptFailed", fmt.Errorf("wrapped: %w", ErrDecryptFailed), true},
		{"ErrNotFound", ErrNotFound, false},
		{"ErrMissingSelector", ErrMissingSelector, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPayloadError(tt.err); got != tt.expect {
				t.Errorf("IsPayloadError(%v) = %v, want %v", tt.err, got, tt.expect)
			}
		})
	}
}
