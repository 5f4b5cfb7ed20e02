package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives. App implements it; tests
// use a recording stub.
type execIface interface {
	Help(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Page(ctx context.Context, arg string) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	PerPage(ctx context.Context, arg string) error
	View(ctx context.Context, arg string) error
	Select(ctx context.Context, id string, on bool) error
	SelectAll(ctx context.Context, on bool) error
	New(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Lang(ctx context.Context, code string) error
	Export(ctx context.Context, format, path string) error
	Go(ctx context.Context, path string) error

	// Report shows a command error to the user.
	Report(ctx context.Context, err error)
	// Status is shown in the prompt.
	Status() string
	// Text returns a localized message for the REPL itself.
	Text(key string) string
}

const helpText = `Commands:
  list | l                  show the current page
  search <text>             filter by name, email, department or position
  clear                     drop the search filter
  page <n> | next | prev    move between pages
  per <n>                   items per page
  view list|table           switch layout
  select <id>, unselect <id>
  selectall, selectnone     select or clear every filtered record
  new                       add an employee
  edit <id>                 edit an employee
  delete <id>               delete an employee
  lang en|tr                switch language
  export <json|pdf> <file>  export the filtered records
  go <path>                 open /, /employees/new or /employees/<id>/edit
  exit | quit               leave the program`

// runREPL reads commands from in until EOF, "exit" or "quit", dispatching
// each to a. The first token is the command; the rest of the line is its
// argument. Handler errors go to a.Report and never end the loop.
func runREPL(ctx context.Context, a execIface, in *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "empdir %s> ", a.Status())

		line, err := in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			fmt.Fprintln(out)
			return
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
		arg = strings.TrimSpace(arg)
		if cmd == "" {
			continue
		}

		var cmdErr error
		switch strings.ToLower(cmd) {
		case "help", "?":
			cmdErr = a.Help(ctx)
		case "list", "l":
			cmdErr = a.List(ctx)
		case "search", "s":
			cmdErr = a.Search(ctx, arg)
		case "clear":
			cmdErr = a.Search(ctx, "")
		case "page":
			cmdErr = a.Page(ctx, arg)
		case "next", "n":
			cmdErr = a.NextPage(ctx)
		case "prev", "p":
			cmdErr = a.PrevPage(ctx)
		case "per":
			cmdErr = a.PerPage(ctx, arg)
		case "view":
			cmdErr = a.View(ctx, arg)
		case "select":
			cmdErr = a.Select(ctx, arg, true)
		case "unselect":
			cmdErr = a.Select(ctx, arg, false)
		case "selectall":
			cmdErr = a.SelectAll(ctx, true)
		case "selectnone":
			cmdErr = a.SelectAll(ctx, false)
		case "new", "add":
			cmdErr = a.New(ctx)
		case "edit", "e":
			cmdErr = a.Edit(ctx, arg)
		case "delete", "rm":
			cmdErr = a.Delete(ctx, arg)
		case "lang":
			cmdErr = a.Lang(ctx, arg)
		case "export":
			format, path, _ := strings.Cut(arg, " ")
			cmdErr = a.Export(ctx, format, strings.TrimSpace(path))
		case "go":
			cmdErr = a.Go(ctx, arg)
		case "exit", "quit":
			fmt.Fprintln(out, a.Text("bye"))
			return
		default:
			fmt.Fprintf(out, "%s: %s\n", a.Text("unknownCommand"), cmd)
		}

		if cmdErr != nil {
			a.Report(ctx, cmdErr)
		}
		if err != nil {
			return
		}
	}
}
