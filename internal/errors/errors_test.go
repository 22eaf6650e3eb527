package errors

import (
	stderrors "errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := &TransportError{Op: "GET", URL: "https://pokeapi.co/api/v2/type", Err: cause}

	assert.True(t, Is(err, ErrTransport))
	assert.False(t, Is(err, ErrNotFound))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")

	notFound := &TransportError{Op: "GET", URL: "https://pokeapi.co/api/v2/pokemon/x", StatusCode: 404}
	assert.True(t, Is(notFound, ErrTransport))
	assert.True(t, Is(notFound, ErrNotFound))
	assert.Contains(t, notFound.Error(), "unexpected status 404")
}

func TestCatalogLoadErrorWrapsTransport(t *testing.T) {
	transport := &TransportError{Op: "GET", URL: "u", StatusCode: 500}
	err := fmt.Errorf("start: %w", &CatalogLoadError{Stage: "list", Err: transport})

	assert.True(t, Is(err, ErrCatalogLoad))
	assert.True(t, Is(err, ErrTransport))
	assert.False(t, Is(err, ErrPersistence))

	var te *TransportError
	require.True(t, As(err, &te))
	assert.Equal(t, 500, te.StatusCode)
	assert.Contains(t, err.Error(), "load catalog (list)")
}

func TestPersistenceAndNotFound(t *testing.T) {
	cause := stderrors.New("unexpected end of JSON input")
	err := &PersistenceError{Key: "favorites", Op: "decode", Err: cause}
	assert.True(t, Is(err, ErrPersistence))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `decode "favorites": unexpected end of JSON input`, err.Error())

	nf := &NotFoundError{Resource: "creature", ID: "missingno"}
	assert.True(t, Is(nf, ErrNotFound))
	assert.False(t, Is(nf, ErrTransport))
	assert.Equal(t, "creature missingno not found", nf.Error())
}

type recordingOutput struct {
	mu    sync.Mutex
	lines []string
	// reenter is called from inside Error to exercise the recursion guard.
	reenter func()
}

func (o *recordingOutput) record(kind string, msgs []string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, m := range msgs {
		o.lines = append(o.lines, kind+":"+m)
	}
}

func (o *recordingOutput) Error(msgs ...string) {
	o.record("error", msgs)
	if o.reenter != nil {
		fn := o.reenter
		o.reenter = nil
		fn()
	}
}
func (o *recordingOutput) Warning(msgs ...string) { o.record("warning", msgs) }
func (o *recordingOutput) Info(msgs ...string)    { o.record("info", msgs) }
func (o *recordingOutput) Success(msgs ...string) { o.record("success", msgs) }

func TestCLIHandlerRoutesByKind(t *testing.T) {
	out := &recordingOutput{}
	h := NewCLIHandler(out)

	h.Error("boom")
	h.Warning("careful")
	h.Info("fyi")
	h.Success("done")

	assert.Equal(t, []string{"error:boom", "warning:careful", "info:fyi", "success:done"}, out.lines)
}

func TestCLIHandlerNestedError(t *testing.T) {
	out := &recordingOutput{}
	h := NewCLIHandler(out)
	out.reenter = func() { h.Error("nested") }

	h.Error("outer")
	assert.Equal(t, []string{"error:outer", "error:nested"}, out.lines)
	assert.False(t, h.inHandling)
}

func TestTUIHandler(t *testing.T) {
	var seen []Message
	h := NewTUIHandler(func(msg Message) { seen = append(seen, msg) })

	_, ok := h.GetLatest()
	assert.False(t, ok)

	h.Error("load failed")
	h.Success("saved")

	latest, ok := h.GetLatest()
	require.True(t, ok)
	assert.Equal(t, "saved", latest.Text)
	assert.Equal(t, MessageTypeSuccess, latest.Type)
	assert.False(t, latest.Timestamp.IsZero())

	all := h.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, MessageTypeError, all[0].Type)
	assert.Len(t, seen, 2)

	all[0].Text = "mutated"
	assert.Equal(t, "load failed", h.GetAll()[0].Text)

	h.Clear()
	assert.Empty(t, h.GetAll())
}

func TestTUIHandlerWithoutCallback(t *testing.T) {
	h := NewTUIHandler(nil)
	h.Warning("w")
	h.Info("i")
	latest, ok := h.GetLatest()
	require.True(t, ok)
	assert.Equal(t, MessageTypeInfo, latest.Type)
}

func TestCLIHandlerReportAddsHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		hint string
	}{
		{name: "not found", err: &NotFoundError{Resource: "creature", ID: "missingno"}, hint: "Use 'dexview list --search <name>' to look a creature up"},
		{name: "catalog load", err: &CatalogLoadError{Stage: "list", Err: &TransportError{Op: "GET", URL: "u", StatusCode: 503}}, hint: "Check your network connection or the api_base_url setting"},
		{name: "plain", err: stderrors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &recordingOutput{}
			NewCLIHandler(out).Report(tt.err)

			want := []string{"error:" + tt.err.Error()}
			if tt.hint != "" {
				want = append(want, "info:"+tt.hint)
			}
			assert.Equal(t, want, out.lines)
		})
	}
}

func TestReportNil(t *testing.T) {
	out := &recordingOutput{}
	NewCLIHandler(out).Report(nil)
	assert.Empty(t, out.lines)
}

func TestHintPersistence(t *testing.T) {
	assert.Contains(t, Hint(&PersistenceError{Op: "decode", Key: "favorites", Err: stderrors.New("x")}), "--debug")
	assert.NotNil(t, NewDefaultCLIHandler())
}
