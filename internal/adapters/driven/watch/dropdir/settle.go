package dropdir

import (
	"context"
	"time"
)

// settled is a path whose quiet period has elapsed. gen identifies the
// timer that fired it.
type settled struct {
	path string
	gen  uint64
}

type pending struct {
	timer *time.Timer
	gen   uint64
}

// debouncer delivers a path on ready once it has gone quiet for settle.
// It is owned by a single goroutine; only the timer callbacks run elsewhere.
type debouncer struct {
	ctx     context.Context
	settle  time.Duration
	ready   chan settled
	pending map[string]pending
	nextGen uint64
}

func newDebouncer(ctx context.Context, settle time.Duration) *debouncer {
	return &debouncer{
		ctx:     ctx,
		settle:  settle,
		ready:   make(chan settled),
		pending: make(map[string]pending),
	}
}

// touch restarts the quiet period for path. A timer that already fired
// cannot be recalled, so it is replaced and its delivery goes stale.
func (d *debouncer) touch(path string) {
	if p, ok := d.pending[path]; ok && p.timer.Stop() {
		p.timer.Reset(d.settle)
		return
	}
	d.nextGen++
	gen := d.nextGen
	d.pending[path] = pending{
		gen: gen,
		timer: time.AfterFunc(d.settle, func() {
			select {
			case d.ready <- settled{path: path, gen: gen}:
			case <-d.ctx.Done():
			}
		}),
	}
}

// cancel forgets path. A delivery already in flight goes stale.
func (d *debouncer) cancel(path string) {
	if p, ok := d.pending[path]; ok {
		p.timer.Stop()
		delete(d.pending, path)
	}
}

// fired reports whether s is the current delivery for its path and, if
// so, forgets the path.
func (d *debouncer) fired(s settled) bool {
	p, ok := d.pending[s.path]
	if !ok || p.gen != s.gen {
		return false
	}
	delete(d.pending, s.path)
	return true
}

func (d *debouncer) stop() {
	for _, p := range d.pending {
		p.timer.Stop()
	}
}
