package confirm

import (
	"context"
	"sync"
)

type pending struct {
	req    Request
	answer chan bool
}

// Dialog is a Gate whose answer comes from another goroutine calling
// Confirm or Cancel. Only one request is open at a time: asking again while
// a request is open replaces it, and the replaced caller gets false.
type Dialog struct {
	mu      sync.Mutex
	current *pending
	onOpen  func(Request)
}

// NewDialog returns a Dialog. onOpen, if not nil, is called each time a
// request opens so the host can show it.
func NewDialog(onOpen func(Request)) *Dialog {
	return &Dialog{onOpen: onOpen}
}

func (d *Dialog) Ask(ctx context.Context, req Request) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	p := &pending{req: req, answer: make(chan bool, 1)}

	d.mu.Lock()
	if d.current != nil {
		d.current.answer <- false
	}
	d.current = p
	onOpen := d.onOpen
	d.mu.Unlock()

	if onOpen != nil {
		onOpen(req)
	}

	select {
	case ok := <-p.answer:
		return ok, nil
	case <-ctx.Done():
		d.mu.Lock()
		if d.current == p {
			d.current = nil
		}
		d.mu.Unlock()
		return false, ctx.Err()
	}
}

// Confirm answers the open request with yes. It reports whether a request
// was open.
func (d *Dialog) Confirm() bool {
	return d.resolve(true)
}

// Cancel answers the open request with no. Closing or escaping the dialog
// is the same as cancelling.
func (d *Dialog) Cancel() bool {
	return d.resolve(false)
}

// Pending returns the open request, if any.
func (d *Dialog) Pending() (Request, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil {
		return Request{}, false
	}
	return d.current.req, true
}

func (d *Dialog) resolve(v bool) bool {
	d.mu.Lock()
	p := d.current
	d.current = nil
	d.mu.Unlock()

	if p == nil {
		return false
	}
	p.answer <- v
	return true
}
