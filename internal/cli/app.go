package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/empdir/internal/common"
	"github.com/dmitrijs2005/empdir/internal/config"
	"github.com/dmitrijs2005/empdir/internal/confirm"
	"github.com/dmitrijs2005/empdir/internal/export"
	"github.com/dmitrijs2005/empdir/internal/i18n"
	"github.com/dmitrijs2005/empdir/internal/logging"
	"github.com/dmitrijs2005/empdir/internal/repositories/localstore"
	"github.com/dmitrijs2005/empdir/internal/route"
	"github.com/dmitrijs2005/empdir/internal/store"
	"github.com/dmitrijs2005/empdir/internal/validators"
	"github.com/dmitrijs2005/empdir/internal/viewmodel"
)

// AppOptions wires an App to its terminal.
type AppOptions struct {
	In     io.Reader
	Out    io.Writer
	Logger logging.Logger
	// Gate confirms deletes and updates. Nil prompts on In/Out.
	Gate confirm.Gate
	Now  func() time.Time
}

// App owns the storage, the store, the translator and the list view model
// for one CLI session.
type App struct {
	cfg    *config.Config
	logger logging.Logger

	db     *sql.DB
	sealed *localstore.SealedRepository
	store  *store.Store
	tr     *i18n.Translator
	list   *viewmodel.List
	gate   confirm.Gate

	in  *bufio.Reader
	out io.Writer
	now func() time.Time

	current   route.Route
	unsubLang func()
}

// NewApp opens the database at cfg.DBPath, loads the directory and, when
// cfg.Seed is set and the directory is empty, adds demo employees. A sealed
// database opened without a passphrase fails with common.ErrorSealRequired
// before anything is read or written.
func NewApp(ctx context.Context, cfg *config.Config, opts AppOptions) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	db, err := localstore.Open(ctx, cfg.DBPath, logger)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		in:      bufio.NewReader(opts.In),
		out:     opts.Out,
		now:     now,
		current: route.List(),
	}

	var repo localstore.Repository = localstore.NewSQLiteRepository(db)
	if cfg.Passphrase != "" {
		sealed, err := localstore.NewSealedRepository(ctx, repo, cfg.Passphrase)
		if err != nil {
			db.Close()
			return nil, err
		}
		a.sealed = sealed
		repo = sealed
	} else {
		sealed, err := localstore.IsSealed(ctx, repo)
		if err != nil {
			db.Close()
			return nil, err
		}
		if sealed {
			db.Close()
			return nil, fmt.Errorf("open %s: %w", cfg.DBPath, common.ErrorSealRequired)
		}
	}

	a.store, err = store.New(ctx, repo, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.tr, err = i18n.New(ctx, repo, logger, cfg.Language)
	if err != nil {
		a.Close()
		return nil, err
	}

	if cfg.Seed {
		n, err := a.store.Seed(ctx, store.DefaultSeedSize)
		if err != nil {
			logger.Warn(ctx, "failed to save demo employees", "error", err)
		} else if n > 0 {
			logger.Info(ctx, "demo employees added", "count", n)
		}
	}

	a.gate = opts.Gate
	if a.gate == nil {
		a.gate = confirm.NewPrompt(a.in, a.out)
	}
	a.list = viewmodel.NewList(a.store, viewmodel.ListOptions{
		PerPage: cfg.PerPage,
		Gate:    a.gate,
		Texts:   a.tr,
	})
	a.unsubLang = a.tr.OnChange(func(l i18n.Language) {
		a.logger.Debug(context.Background(), "language changed", "lang", l)
		if a.current.Kind == route.KindList {
			a.render()
		}
	})
	return a, nil
}

// Close releases the view model subscriptions and the database.
func (a *App) Close() error {
	if a.unsubLang != nil {
		a.unsubLang()
	}
	if a.list != nil {
		a.list.Close()
	}
	if a.sealed != nil {
		a.sealed.Close()
	}
	return a.db.Close()
}

// Run shows the list and starts the interactive loop.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, a.tr.T(i18n.AppTitle))
	a.render()
	runREPL(ctx, a, a.in, a.out)
}

func (a *App) render() {
	a.applyLayout()
	renderList(a.out, a.list, a.tr)
}

func (a *App) navigate(o route.Outcome) {
	if !o.Navigate {
		return
	}
	a.current = o.To
	if o.To.Kind == route.KindList {
		a.render()
	}
}

// Status is the prompt label, e.g. "[list 2/10]".
func (a *App) Status() string {
	return fmt.Sprintf("[%s %d/%d]", a.current.Kind, a.list.Page(), a.list.PageCount())
}

// Text localizes a message key.
func (a *App) Text(key string) string {
	return a.tr.T(i18n.Key(key))
}

// Report prints err in the current language. A missing record sends the
// user back to the list.
func (a *App) Report(ctx context.Context, err error) {
	var verrs validators.Errors
	var perr *common.PersistenceError

	switch {
	case errors.As(err, &verrs):
		renderErrors(a.out, verrs, a.tr)
	case errors.As(err, &perr):
		a.logger.Error(ctx, "persistence failure", "op", perr.Op, "key", perr.Key, "error", perr.Err)
		fmt.Fprintf(a.out, "%s: %v\n", a.tr.T(i18n.PersistFailed), perr.Err)
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, a.tr.T(i18n.RecordGone))
		a.navigate(route.NavigateList)
	default:
		fmt.Fprintf(a.out, "error: %v\n", err)
	}
}

func (a *App) Help(context.Context) error {
	fmt.Fprintln(a.out, helpText)
	return nil
}

func (a *App) List(context.Context) error {
	a.current = route.List()
	a.render()
	return nil
}

func (a *App) Search(_ context.Context, query string) error {
	a.list.SetQuery(query)
	a.render()
	return nil
}

func (a *App) Page(_ context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("page %q: %w", arg, common.ErrorInvalidInput)
	}
	a.list.SetPage(n)
	a.render()
	return nil
}

func (a *App) NextPage(context.Context) error {
	a.list.NextPage()
	a.render()
	return nil
}

func (a *App) PrevPage(context.Context) error {
	a.list.PrevPage()
	a.render()
	return nil
}

func (a *App) PerPage(_ context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("per page %q: %w", arg, common.ErrorInvalidInput)
	}
	if err := a.list.SetPerPage(n); err != nil {
		return err
	}
	a.render()
	return nil
}

func (a *App) View(_ context.Context, arg string) error {
	m, err := viewmodel.ParseViewMode(arg)
	if err != nil {
		return err
	}
	if err := a.list.SetViewMode(m); err != nil {
		return err
	}
	a.render()
	return nil
}

func (a *App) Select(_ context.Context, id string, on bool) error {
	if !a.list.Toggle(id, on) {
		return fmt.Errorf("select %s: %w", id, common.ErrorNotFound)
	}
	a.render()
	return nil
}

func (a *App) SelectAll(_ context.Context, on bool) error {
	a.list.ToggleAllFiltered(on)
	a.render()
	return nil
}

func (a *App) New(ctx context.Context) error {
	a.current = route.Create()
	f := viewmodel.NewCreateForm(a.store, a.formOptions())
	return a.runForm(ctx, f)
}

func (a *App) Edit(ctx context.Context, id string) error {
	f, err := viewmodel.NewEditForm(a.store, id, a.formOptions())
	if err != nil {
		return err
	}
	a.current = route.Edit(id)
	return a.runForm(ctx, f)
}

func (a *App) formOptions() viewmodel.FormOptions {
	return viewmodel.FormOptions{Gate: a.gate, Texts: a.tr, Now: a.now}
}

func (a *App) Delete(ctx context.Context, id string) error {
	removed, err := a.list.Delete(ctx, id)
	if removed || err != nil {
		a.render()
	}
	return err
}

func (a *App) Lang(ctx context.Context, code string) error {
	if code == "" {
		fmt.Fprintf(a.out, "%s: %s\n", a.tr.T(i18n.Lang), a.tr.Language())
		return nil
	}
	return a.tr.SetLanguage(ctx, code)
}

// Export writes the filtered records. An empty format is taken from the
// file extension; an empty path becomes employees.<format>.
func (a *App) Export(_ context.Context, format, path string) error {
	if path == "" && strings.Contains(format, ".") {
		format, path = "", format
	}
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}
	if path == "" {
		path = "employees." + string(f)
	}

	if err := export.WriteFile(path, f, a.list.Filtered(), a.exportOptions()); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s: %s (%d)\n", a.tr.T(i18n.Exported), path, len(a.list.Filtered()))
	return nil
}

func (a *App) exportOptions() export.Options {
	headers := make([]string, 0, len(validators.Fields))
	for _, f := range validators.Fields {
		headers = append(headers, fieldLabel(a.tr, f))
	}
	return export.Options{Title: a.tr.T(i18n.EmployeeList), Headers: headers}
}

// Go opens the screen for a path.
func (a *App) Go(ctx context.Context, path string) error {
	r := route.Parse(path)
	switch r.Kind {
	case route.KindCreate:
		return a.New(ctx)
	case route.KindEdit:
		return a.Edit(ctx, r.ID)
	}
	return a.List(ctx)
}
