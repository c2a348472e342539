package cli

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/domcmp"
	"github.com/pthm/domcmp/internal/config"
	"github.com/pthm/domcmp/lib/dom"
)

func TestAttrsText(t *testing.T) {
	out, _, err := execute(t, config.Config{}, "attrs", "save")
	require.NoError(t, err)
	assert.Equal(t, "data-action=\"save\"\n", out)

	out, _, err = execute(t, config.Config{}, "attrs", "qty", "--change")
	require.NoError(t, err)
	assert.Equal(t, "data-action=\"qty\"\ndata-trigger=\"change\"\n", out)
}

func TestAttrsPayloadNeedsKey(t *testing.T) {
	_, _, err := execute(t, config.Config{}, "attrs", "save", "--payload", `{"sku":"A-1"}`)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestAttrsInvalidPayload(t *testing.T) {
	_, _, err := execute(t, config.Config{}, "attrs", "save", "--key", "k", "--payload", "{")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

// payloadElement renders attrs onto a button and parses it back.
func payloadElement(t *testing.T, attrs map[string]string) *dom.Element {
	t.Helper()
	html := `<button id="b"`
	for k, v := range attrs {
		html += fmt.Sprintf(` %s="%s"`, k, v)
	}
	html += `></button>`
	doc, err := dom.ParseString(html)
	require.NoError(t, err)
	el := doc.Query("#b").First()
	require.NotNil(t, el)
	return el
}

func TestAttrsPayloadRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  config.Config
		attr string
	}{
		{"signed with flag key", []string{"--key", "dev-key"}, config.Config{}, "data-payload"},
		{"sealed with flag key", []string{"--key", "dev-key", "--sealed"}, config.Config{}, "data-payload-sealed"},
		{"signed with env key", nil, config.Config{PayloadKey: "dev-key"}, "data-payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--format", "json", "attrs", "save", "--payload", `{"sku":"A-1"}`}, tt.args...)
			out, _, err := execute(t, tt.env, args...)
			require.NoError(t, err)

			var attrs map[string]string
			require.NoError(t, json.Unmarshal([]byte(out), &attrs))
			assert.Equal(t, "save", attrs["data-action"])
			require.Contains(t, attrs, tt.attr)

			enc, err := domcmp.NewEncoder([]byte("dev-key"))
			require.NoError(t, err)
			var got struct {
				SKU string `msgpack:"sku"`
			}
			require.NoError(t, domcmp.DecodePayload(enc, payloadElement(t, attrs), &got))
			assert.Equal(t, "A-1", got.SKU)
		})
	}
}
