package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clipscope/internal/adapters/driven/transfer"
	"github.com/custodia-labs/clipscope/internal/core/domain"
	"github.com/custodia-labs/clipscope/internal/core/ports/driven"
)

// chanSource emits every payload sent on its channel.
type chanSource struct {
	mode     domain.ListenMode
	payloads chan driven.Payload
	failWith error
}

func newChanSource(mode domain.ListenMode) *chanSource {
	return &chanSource{mode: mode, payloads: make(chan driven.Payload)}
}

func (s *chanSource) Mode() domain.ListenMode { return s.mode }

func (s *chanSource) Run(ctx context.Context, emit func(driven.Payload)) error {
	if s.failWith != nil {
		return s.failWith
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case p := <-s.payloads:
			emit(p)
		}
	}
}

func textPayload(text string) driven.Payload {
	return transfer.NewDataTransfer().SetData("text/plain", text)
}

func waitResult(t *testing.T, results <-chan domain.ParseResult) domain.ParseResult {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("no parse result delivered")
		return domain.ParseResult{}
	}
}

func TestListenerRegistry_DeliversResults(t *testing.T) {
	reg := NewListenerRegistry(newTestInspector(nil, nil))
	src := newChanSource(domain.ListenPaste)
	results := make(chan domain.ParseResult, 1)

	sub, err := reg.Enable(context.Background(), src, func(r domain.ParseResult) { results <- r })
	require.NoError(t, err)
	defer sub.Disable()

	src.payloads <- textPayload("hello")
	r := waitResult(t, results)

	assert.True(t, r.Success)
	assert.Equal(t, domain.OriginPaste, r.Origin)
	require.Len(t, r.Items, 1)
	assert.Equal(t, "hello", r.Items[0].Text)
	assert.True(t, reg.Active(domain.ListenPaste))
	assert.Equal(t, domain.ListenPaste, sub.Mode())
}

func TestListenerRegistry_DropOrigin(t *testing.T) {
	reg := NewListenerRegistry(newTestInspector(nil, nil))
	src := newChanSource(domain.ListenDrop)
	results := make(chan domain.ParseResult, 1)

	sub, err := reg.Enable(context.Background(), src, func(r domain.ParseResult) { results <- r })
	require.NoError(t, err)
	defer sub.Disable()

	src.payloads <- transfer.NewDataTransfer().AddFile(transfer.NewFile("a.png", "image/png", []byte{1}))
	r := waitResult(t, results)

	assert.Equal(t, domain.OriginDrop, r.Origin)
	require.Len(t, r.Items, 1)
	assert.Equal(t, domain.KindPNG, r.Items[0].Kind)
}

func TestListenerRegistry_EnableReplacesSameMode(t *testing.T) {
	reg := NewListenerRegistry(newTestInspector(nil, nil))
	first := newChanSource(domain.ListenPaste)
	second := newChanSource(domain.ListenPaste)

	sub1, err := reg.Enable(context.Background(), first, nil)
	require.NoError(t, err)
	sub2, err := reg.Enable(context.Background(), second, nil)
	require.NoError(t, err)
	defer sub2.Disable()

	select {
	case <-sub1.Done():
	default:
		t.Fatal("first listener still running")
	}
	assert.True(t, reg.Active(domain.ListenPaste))

	// Disabling the replaced handle leaves the new one registered.
	sub1.Disable()
	assert.True(t, reg.Active(domain.ListenPaste))
}

func TestListenerRegistry_ModesAreIndependent(t *testing.T) {
	reg := NewListenerRegistry(newTestInspector(nil, nil))

	paste, err := reg.Enable(context.Background(), newChanSource(domain.ListenPaste), nil)
	require.NoError(t, err)
	drop, err := reg.Enable(context.Background(), newChanSource(domain.ListenDrop), nil)
	require.NoError(t, err)

	reg.Disable(domain.ListenPaste)

	assert.False(t, reg.Active(domain.ListenPaste))
	assert.True(t, reg.Active(domain.ListenDrop))
	<-paste.Done()

	drop.Disable()
	assert.False(t, reg.Active(domain.ListenDrop))
}

func TestListenerRegistry_DisableIsIdempotent(t *testing.T) {
	reg := NewListenerRegistry(newTestInspector(nil, nil))
	sub, err := reg.Enable(context.Background(), newChanSource(domain.ListenPaste), nil)
	require.NoError(t, err)

	sub.Disable()
	sub.Disable()
	reg.Disable(domain.ListenPaste)
	reg.Disable(domain.ListenDrop)

	assert.False(t, reg.Active(domain.ListenPaste))
	assert.NoError(t, sub.Err())
}

func TestListenerRegistry_RegistriesAreIndependent(t *testing.T) {
	a := NewListenerRegistry(newTestInspector(nil, nil))
	b := NewListenerRegistry(newTestInspector(nil, nil))

	sub, err := a.Enable(context.Background(), newChanSource(domain.ListenPaste), nil)
	require.NoError(t, err)
	defer sub.Disable()

	b.Disable(domain.ListenPaste)

	assert.True(t, a.Active(domain.ListenPaste))
	assert.False(t, b.Active(domain.ListenPaste))
}

func TestListenerRegistry_NoCallbackAfterDisable(t *testing.T) {
	reg := NewListenerRegistry(newTestInspector(nil, nil))
	src := newChanSource(domain.ListenPaste)
	calls := make(chan domain.ParseResult, 4)

	sub, err := reg.Enable(context.Background(), src, func(r domain.ParseResult) { calls <- r })
	require.NoError(t, err)
	sub.Disable()

	select {
	case src.payloads <- textPayload("late"):
		t.Fatal("stopped source accepted a payload")
	case <-time.After(20 * time.Millisecond):
	}
	assert.Empty(t, calls)
}

func TestListenerRegistry_ParentCancellationStops(t *testing.T) {
	reg := NewListenerRegistry(newTestInspector(nil, nil))
	ctx, cancel := context.WithCancel(context.Background())

	sub, err := reg.Enable(ctx, newChanSource(domain.ListenDrop), nil)
	require.NoError(t, err)
	cancel()

	select {
	case <-sub.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop on cancellation")
	}
	assert.NoError(t, sub.Err())
}

func TestListenerRegistry_SourceFailure(t *testing.T) {
	reg := NewListenerRegistry(newTestInspector(nil, nil))
	src := newChanSource(domain.ListenDrop)
	src.failWith = errors.New("watch failed")

	sub, err := reg.Enable(context.Background(), src, nil)
	require.NoError(t, err)

	<-sub.Done()
	assert.EqualError(t, sub.Err(), "watch failed")
}

func TestListenerRegistry_InvalidArguments(t *testing.T) {
	reg := NewListenerRegistry(newTestInspector(nil, nil))

	_, err := reg.Enable(context.Background(), nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = reg.Enable(context.Background(), newChanSource("hover"), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, reg.Active("hover"))

	_, err = NewListenerRegistry(nil).Enable(context.Background(), newChanSource(domain.ListenPaste), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
