package domcmp

// Recorder collects trace events for assertions in tests and for the
// domcmp CLI.
//
//	rec := domcmp.NewRecorder()
//	e := domcmp.New(doc, rec.Option())
//	...
//	if got := rec.Lines(); !slices.Equal(got, want) { ... }
type Recorder struct {
	events []TraceEvent
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Option installs the recorder on an engine.
func (r *Recorder) Option() Option {
	return WithTrace(r.Record)
}

// Record appends an event.
func (r *Recorder) Record(ev TraceEvent) {
	r.events = append(r.events, ev)
}

// Events returns every recorded event in order.
func (r *Recorder) Events() []TraceEvent {
	return r.events
}

// Kind returns the recorded events of one kind.
func (r *Recorder) Kind(k TraceKind) []TraceEvent {
	var out []TraceEvent
	for _, ev := range r.events {
		if ev.Kind == k {
			out = append(out, ev)
		}
	}
	return out
}

// Lines renders every recorded event with TraceEvent.String.
func (r *Recorder) Lines() []string {
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.String()
	}
	return out
}

// Reset discards recorded events.
func (r *Recorder) Reset() {
	r.events = nil
}
