package confirm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	ok  bool
	err error
}

// askAsync starts Ask in a goroutine and waits until the request is open.
func askAsync(t *testing.T, ctx context.Context, d *Dialog, opened <-chan Request, req Request) <-chan result {
	t.Helper()
	out := make(chan result, 1)
	go func() {
		ok, err := d.Ask(ctx, req)
		out <- result{ok, err}
	}()
	select {
	case got := <-opened:
		require.Equal(t, req, got)
	case <-time.After(time.Second):
		t.Fatal("request never opened")
	}
	return out
}

func wait(t *testing.T, ch <-chan result) result {
	t.Helper()
	select {
	case r := <-ch:
		return r
	case <-time.After(time.Second):
		t.Fatal("Ask did not return")
		return result{}
	}
}

func newTestDialog() (*Dialog, chan Request) {
	opened := make(chan Request, 4)
	return NewDialog(func(r Request) { opened <- r }), opened
}

func TestDialog_Confirm(t *testing.T) {
	d, opened := newTestDialog()
	res := askAsync(t, context.Background(), d, opened, Request{Message: "delete Ada?"})

	pend, ok := d.Pending()
	require.True(t, ok)
	assert.Equal(t, "delete Ada?", pend.Message)

	assert.True(t, d.Confirm())
	r := wait(t, res)
	assert.NoError(t, r.err)
	assert.True(t, r.ok)

	_, ok = d.Pending()
	assert.False(t, ok)
}

func TestDialog_Cancel(t *testing.T) {
	d, opened := newTestDialog()
	res := askAsync(t, context.Background(), d, opened, Request{Message: "x"})

	assert.True(t, d.Cancel())
	r := wait(t, res)
	assert.NoError(t, r.err)
	assert.False(t, r.ok)
}

func TestDialog_SecondAskSupersedesFirst(t *testing.T) {
	d, opened := newTestDialog()
	first := askAsync(t, context.Background(), d, opened, Request{Message: "first"})
	second := askAsync(t, context.Background(), d, opened, Request{Message: "second"})

	r := wait(t, first)
	assert.NoError(t, r.err)
	assert.False(t, r.ok, "superseded caller resolves false")

	pend, ok := d.Pending()
	require.True(t, ok)
	assert.Equal(t, "second", pend.Message)

	d.Confirm()
	r = wait(t, second)
	assert.True(t, r.ok)
}

func TestDialog_ContextCancelAbandons(t *testing.T) {
	d, opened := newTestDialog()
	ctx, cancel := context.WithCancel(context.Background())
	res := askAsync(t, ctx, d, opened, Request{Message: "x"})

	cancel()
	r := wait(t, res)
	assert.ErrorIs(t, r.err, context.Canceled)
	assert.False(t, r.ok)

	assert.False(t, d.Confirm(), "late confirm is a no-op")
}

func TestDialog_ConfirmWithoutRequest(t *testing.T) {
	d := NewDialog(nil)
	assert.False(t, d.Confirm())
	assert.False(t, d.Cancel())
}

func TestDialog_AlreadyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := NewDialog(nil).Ask(ctx, Request{})
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAlways(t *testing.T) {
	ok, err := Always(true).Ask(context.Background(), Request{})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Always(false).Ask(context.Background(), Request{})
	require.NoError(t, err)
	assert.False(t, ok)
}
