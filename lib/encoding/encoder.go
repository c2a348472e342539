// Package encoding packs action payloads carried in element attributes.
//
// Values are serialized with msgpack and then either signed or sealed:
//   - Signed: base64url(body) "." base64url(HMAC-SHA256(body)[:16]).
//     Readable by anyone, tamper-evident.
//   - Sealed: base64url(nonce || AES-256-GCM(body)). Opaque.
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Errors returned by Decode.
var (
	ErrInvalidFormat    = errors.New("encoding: invalid payload format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
	ErrDecryptFailed    = errors.New("encoding: payload decryption failed")
)

const sigLen = 16

var b64 = base64.RawURLEncoding

// Encoder signs or seals payloads with a single key.
type Encoder struct {
	key []byte
	gcm cipher.AEAD
}

// NewEncoder creates an encoder. Keys shorter than 32 bytes are stretched
// with SHA-256.
func NewEncoder(key []byte) (*Encoder, error) {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, fmt.Errorf("encoding: cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("encoding: gcm: %w", err)
	}

	return &Encoder{key: key, gcm: gcm}, nil
}

// Encode serializes v. When sealed is true the result is encrypted,
// otherwise it is signed.
func (e *Encoder) Encode(v any, sealed bool) (string, error) {
	body, err := msgpack.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding: marshal: %w", err)
	}
	if sealed {
		return e.seal(body)
	}
	return e.sign(body), nil
}

// Decode reverses Encode into v, which must be a pointer.
func (e *Encoder) Decode(encoded string, sealed bool, v any) error {
	var (
		body []byte
		err  error
	)
	if sealed {
		body, err = e.open(encoded)
	} else {
		body, err = e.verify(encoded)
	}
	if err != nil {
		return err
	}

	if err := msgpack.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return nil
}

func (e *Encoder) mac(body []byte) []byte {
	m := hmac.New(sha256.New, e.key)
	m.Write(body)
	return m.Sum(nil)[:sigLen]
}

func (e *Encoder) sign(body []byte) string {
	return b64.EncodeToString(body) + "." + b64.EncodeToString(e.mac(body))
}

func (e *Encoder) verify(encoded string) ([]byte, error) {
	data, sig, ok := strings.Cut(encoded, ".")
	if !ok {
		return nil, fmt.Errorf("%w: missing signature", ErrInvalidFormat)
	}

	body, err := b64.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	got, err := b64.DecodeString(sig)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if !hmac.Equal(got, e.mac(body)) {
		return nil, ErrSignatureInvalid
	}
	return body, nil
}

func (e *Encoder) seal(body []byte) (string, error) {
	nonce := make([]byte, e.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("encoding: nonce: %w", err)
	}
	return b64.EncodeToString(e.gcm.Seal(nonce, nonce, body, nil)), nil
}

func (e *Encoder) open(encoded string) ([]byte, error) {
	raw, err := b64.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	ns := e.gcm.NonceSize()
	if len(raw) < ns {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecryptFailed)
	}

	body, err := e.gcm.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return body, nil
}
