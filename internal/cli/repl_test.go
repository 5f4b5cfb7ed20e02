package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls    []string
	reported []error
	failOn   string
}

func (f *fakeExec) rec(name string) error {
	f.calls = append(f.calls, name)
	if name == f.failOn {
		return errors.New("boom")
	}
	return nil
}

func (f *fakeExec) Help(context.Context) error                { return f.rec("help") }
func (f *fakeExec) List(context.Context) error                { return f.rec("list") }
func (f *fakeExec) Search(_ context.Context, q string) error  { return f.rec("search:" + q) }
func (f *fakeExec) Page(_ context.Context, a string) error    { return f.rec("page:" + a) }
func (f *fakeExec) NextPage(context.Context) error            { return f.rec("next") }
func (f *fakeExec) PrevPage(context.Context) error            { return f.rec("prev") }
func (f *fakeExec) PerPage(_ context.Context, a string) error { return f.rec("per:" + a) }
func (f *fakeExec) View(_ context.Context, a string) error    { return f.rec("view:" + a) }
func (f *fakeExec) Select(_ context.Context, id string, on bool) error {
	if on {
		return f.rec("select:" + id)
	}
	return f.rec("unselect:" + id)
}
func (f *fakeExec) SelectAll(_ context.Context, on bool) error {
	if on {
		return f.rec("selectall")
	}
	return f.rec("selectnone")
}
func (f *fakeExec) New(context.Context) error                 { return f.rec("new") }
func (f *fakeExec) Edit(_ context.Context, id string) error   { return f.rec("edit:" + id) }
func (f *fakeExec) Delete(_ context.Context, id string) error { return f.rec("delete:" + id) }
func (f *fakeExec) Lang(_ context.Context, c string) error    { return f.rec("lang:" + c) }
func (f *fakeExec) Export(_ context.Context, format, path string) error {
	return f.rec("export:" + format + ":" + path)
}
func (f *fakeExec) Go(_ context.Context, p string) error { return f.rec("go:" + p) }
func (f *fakeExec) Report(_ context.Context, err error)  { f.reported = append(f.reported, err) }
func (f *fakeExec) Status() string                       { return "[test]" }
func (f *fakeExec) Text(key string) string               { return key }

func runWith(t *testing.T, f *fakeExec, input string) string {
	t.Helper()
	var out bytes.Buffer
	runREPL(context.Background(), f, bufio.NewReader(strings.NewReader(input)), &out)
	return out.String()
}

func TestRunREPL_Dispatch(t *testing.T) {
	f := &fakeExec{}
	input := strings.Join([]string{
		"help", "l", "search  Ada Lovelace ", "clear", "page 3", "n", "prev",
		"per 10", "view table", "select a1", "unselect a1", "selectall",
		"selectnone", "new", "edit a1", "rm a2", "lang tr",
		"export pdf out.pdf", "go /employees/new", "",
	}, "\n")

	runWith(t, f, input)

	assert.Equal(t, []string{
		"help", "list", "search:Ada Lovelace", "search:", "page:3", "next", "prev",
		"per:10", "view:table", "select:a1", "unselect:a1", "selectall",
		"selectnone", "new", "edit:a1", "delete:a2", "lang:tr",
		"export:pdf:out.pdf", "go:/employees/new",
	}, f.calls)
}

func TestRunREPL_ExitStopsLoop(t *testing.T) {
	f := &fakeExec{}
	out := runWith(t, f, "list\nquit\nlist\n")

	assert.Equal(t, []string{"list"}, f.calls)
	assert.Contains(t, out, "bye")
	assert.Contains(t, out, "empdir [test]> ")
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	f := &fakeExec{}
	out := runWith(t, f, "frobnicate\n")

	assert.Empty(t, f.calls)
	assert.Contains(t, out, "unknownCommand: frobnicate")
}

func TestRunREPL_ErrorsAreReported(t *testing.T) {
	f := &fakeExec{failOn: "next"}
	runWith(t, f, "next\nprev\n")

	assert.Equal(t, []string{"next", "prev"}, f.calls)
	if assert.Len(t, f.reported, 1) {
		assert.EqualError(t, f.reported[0], "boom")
	}
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	f := &fakeExec{}
	runWith(t, f, "list\nnext")

	assert.Equal(t, []string{"list", "next"}, f.calls)
}

func TestRunREPL_CancelledContext(t *testing.T) {
	f := &fakeExec{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	runREPL(ctx, f, bufio.NewReader(strings.NewReader("list\n")), &out)
	assert.Empty(t, f.calls)
}
