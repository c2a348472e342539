package domcmp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TraceKind classifies a trace event.
type TraceKind string

const (
	TraceEnable  TraceKind = "enable"
	TraceReject  TraceKind = "reject"
	TraceDisable TraceKind = "disable"
	TraceRemove  TraceKind = "remove"
	TraceDefer   TraceKind = "defer"
	TraceDeliver TraceKind = "deliver"
	TraceAction  TraceKind = "action"
)

// TraceEvent is one observable step of the engine.
//
// Component is the component path ("" for listeners without an owner).
// Name is the event or action name, or the rejection reason ("selector",
// "guard"). Data is the event data, or "#id" of the action element.
type TraceEvent struct {
	Kind      TraceKind `json:"kind"`
	Component string    `json:"component,omitempty"`
	Name      string    `json:"name,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// String renders the event as a single line:
//
//	enable cart
//	reject promo guard
//	defer ready {"x":1}
//	deliver ready -> cart {"x":1}
//	action save -> cart/items #save
func (ev TraceEvent) String() string {
	var sb strings.Builder
	sb.WriteString(string(ev.Kind))
	switch ev.Kind {
	case TraceDefer:
		fmt.Fprintf(&sb, " %s %s", ev.Name, renderData(ev.Data))
	case TraceDeliver:
		target := ev.Component
		if target == "" {
			target = "*"
		}
		fmt.Fprintf(&sb, " %s -> %s %s", ev.Name, target, renderData(ev.Data))
	case TraceAction:
		fmt.Fprintf(&sb, " %s -> %s", ev.Name, ev.Component)
		if ref, _ := ev.Data.(string); ref != "" {
			sb.WriteString(" " + ref)
		}
	case TraceReject:
		fmt.Fprintf(&sb, " %s %s", ev.Component, ev.Name)
	default:
		sb.WriteString(" " + ev.Component)
	}
	return sb.String()
}

func renderData(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}

func (e *Engine) emit(ev TraceEvent) {
	for _, fn := range e.tracers {
		fn(ev)
	}
}
