package domcmp

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/domcmp/lib/dom"
)

type lineItem struct {
	SKU string `msgpack:"sku"`
	Qty int    `msgpack:"qty"`
}

func testEncoder(t *testing.T) *Encoder {
	t.Helper()
	enc, err := NewEncoder([]byte("action-test-key"))
	require.NoError(t, err)
	return enc
}

func TestActionAttrs(t *testing.T) {
	tests := []struct {
		name    string
		builder *ActionBuilder
		want    templ.Attributes
	}{
		{
			name:    "click",
			builder: Action("save"),
			want:    templ.Attributes{"data-action": "save"},
		},
		{
			name:    "change",
			builder: Action("qty").OnChange(),
			want:    templ.Attributes{"data-action": "qty", "data-trigger": "change"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.builder.Attrs())
			assert.NoError(t, tt.builder.Err())
		})
	}
}

func TestActionPayloadWithoutEncoder(t *testing.T) {
	b := Action("save").Payload(nil, lineItem{})
	assert.Error(t, b.Err())
	assert.NotContains(t, b.Attrs(), "data-payload")
}

// renderButton renders attrs onto a button the way a templ template would.
func renderButton(t *testing.T, id string, attrs templ.Attributes) string {
	t.Helper()
	var sb strings.Builder
	sb.WriteString(`<html><body><button id="` + id + `"`)
	err := templ.RenderAttributes(context.Background(), &sb, attrs)
	require.NoError(t, err)
	sb.WriteString(`>go</button></body></html>`)
	return sb.String()
}

func TestPayloadRoundTripThroughDispatch(t *testing.T) {
	enc := testEncoder(t)

	tests := []struct {
		name    string
		builder *ActionBuilder
		attr    string
	}{
		{"signed", Action("buy").Payload(enc, lineItem{SKU: "A-1", Qty: 2}), "data-payload"},
		{"sealed", Action("buy").SealedPayload(enc, lineItem{SKU: "A-1", Qty: 2}), "data-payload-sealed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.builder.Err())
			attrs := tt.builder.Attrs()
			assert.Contains(t, attrs, tt.attr)

			doc, err := dom.ParseString(renderButton(t, "buy", attrs))
			require.NoError(t, err)

			var got lineItem
			var decodeErr error
			e := New(doc, WithLogger(quietLogger()))
			e.MustRegister(Config{Name: "shop", Init: noop, Remove: noop, Actions: map[string][]ActionFunc{
				"buy": {func(el *dom.Element, _ *Component) { decodeErr = DecodePayload(enc, el, &got) }},
			}})
			require.NoError(t, e.Init())

			_, err = doc.Click("#buy")
			require.NoError(t, err)
			require.NoError(t, decodeErr)
			assert.Equal(t, lineItem{SKU: "A-1", Qty: 2}, got)
		})
	}
}

func TestDecodePayloadErrors(t *testing.T) {
	enc := testEncoder(t)
	other, err := NewEncoder([]byte("some-other-key"))
	require.NoError(t, err)

	signed := Action("x").Payload(other, lineItem{SKU: "B"}).Attrs()["data-payload"].(string)
	sealed := Action("x").SealedPayload(other, lineItem{SKU: "B"}).Attrs()["data-payload-sealed"].(string)

	tests := []struct {
		name    string
		html    string
		wantErr error
	}{
		{"no payload", `<button id="t">x</button>`, ErrNoPayload},
		{"malformed", `<button id="t" data-payload="garbage">x</button>`, ErrInvalidFormat},
		{"wrong signing key", `<button id="t" data-payload="` + signed + `">x</button>`, ErrSignatureInvalid},
		{"wrong sealing key", `<button id="t" data-payload-sealed="` + sealed + `">x</button>`, ErrDecryptFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := dom.ParseString(tt.html)
			require.NoError(t, err)

			var out lineItem
			err = DecodePayload(enc, doc.Query("#t").First(), &out)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsPayloadError(err))
		})
	}

	assert.ErrorIs(t, DecodePayload(enc, nil, &lineItem{}), ErrNoPayload)
}
