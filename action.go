package domcmp

import (
	"fmt"

	"github.com/a-h/templ"
)

// Data attribute keys read by the action dispatcher (without the "data-"
// prefix).
const (
	AttrAction        = "action"
	AttrTrigger       = "trigger"
	AttrPayload       = "payload"
	AttrSealedPayload = "payload-sealed"

	// TriggerChange moves an action from click to change.
	TriggerChange = "change"
)

// ActionBuilder produces the element attributes that declare an action.
//
//	<button { domcmp.Action("save").Attrs()... }>Save</button>
//	<select { domcmp.Action("qty").OnChange().Payload(enc, item).Attrs()... }>
//
// The engine's dispatcher routes click (or change) events on such elements
// to every component callback registered under the action name.
type ActionBuilder struct {
	name    string
	trigger string
	payload string
	sealed  bool
	err     error
}

// Action starts an attribute builder for the named action.
func Action(name string) *ActionBuilder {
	return &ActionBuilder{name: name}
}

// OnChange fires the action on change instead of click.
func (b *ActionBuilder) OnChange() *ActionBuilder {
	b.trigger = TriggerChange
	return b
}

// Payload attaches v as a signed payload: readable, tamper-evident.
func (b *ActionBuilder) Payload(enc *Encoder, v any) *ActionBuilder {
	return b.attach(enc, v, false)
}

// SealedPayload attaches v encrypted, for values the page must not read.
func (b *ActionBuilder) SealedPayload(enc *Encoder, v any) *ActionBuilder {
	return b.attach(enc, v, true)
}

func (b *ActionBuilder) attach(enc *Encoder, v any, sealed bool) *ActionBuilder {
	if enc == nil {
		b.err = fmt.Errorf("domcmp: action %q: payload without encoder", b.name)
		return b
	}
	encoded, err := enc.Encode(v, sealed)
	if err != nil {
		b.err = fmt.Errorf("domcmp: action %q: %w", b.name, err)
		return b
	}
	b.payload = encoded
	b.sealed = sealed
	return b
}

// Err returns the first error recorded while attaching a payload.
// Attrs omits the payload when Err is non-nil.
func (b *ActionBuilder) Err() error {
	return b.err
}

// Attrs returns the attributes for spreading onto an element.
func (b *ActionBuilder) Attrs() templ.Attributes {
	attrs := templ.Attributes{
		"data-" + AttrAction: b.name,
	}
	if b.trigger != "" {
		attrs["data-"+AttrTrigger] = b.trigger
	}
	if b.payload != "" && b.err == nil {
		if b.sealed {
			attrs["data-"+AttrSealedPayload] = b.payload
		} else {
			attrs["data-"+AttrPayload] = b.payload
		}
	}
	return attrs
}
