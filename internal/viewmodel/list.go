package viewmodel

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/empdir/internal/common"
	"github.com/dmitrijs2005/empdir/internal/confirm"
	"github.com/dmitrijs2005/empdir/internal/i18n"
	"github.com/dmitrijs2005/empdir/internal/models"
	"golang.org/x/text/cases"
)

// DefaultPerPage is the initial page size.
const DefaultPerPage = 5

// ViewMode selects how the current page is drawn.
type ViewMode string

const (
	ViewList  ViewMode = "list"
	ViewTable ViewMode = "table"
)

// ParseViewMode accepts "list" or "table" in any case.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case ViewList:
		return ViewList, nil
	case ViewTable:
		return ViewTable, nil
	}
	return "", fmt.Errorf("view mode %q: %w", s, common.ErrorInvalidInput)
}

// SelectionState summarizes the selection over the filtered records.
type SelectionState int

const (
	SelectionNone SelectionState = iota
	SelectionSome
	SelectionAll
)

func (s SelectionState) String() string {
	switch s {
	case SelectionAll:
		return "all"
	case SelectionSome:
		return "some"
	default:
		return "none"
	}
}

// ListStore is what the list needs from the record store.
type ListStore interface {
	List() []models.Employee
	GetByID(id string) (models.Employee, bool)
	Remove(ctx context.Context, id string) (bool, error)
	Subscribe(fn func()) func()
}

// ListOptions configures a List. Zero values pick defaults; a nil Gate
// declines every deletion.
type ListOptions struct {
	PerPage int
	Mode    ViewMode
	Gate    confirm.Gate
	Texts   Texts
}

// List is the state of the employee list screen. It re-reads the store on
// every store notification. Drive it from a single goroutine.
type List struct {
	store ListStore
	gate  confirm.Gate
	texts Texts

	data        []models.Employee
	query       string
	page        int
	perPage     int
	selected    map[string]struct{}
	mode        ViewMode
	forceTable  bool
	narrow      bool
	unsubscribe func()
}

func NewList(store ListStore, opts ListOptions) *List {
	l := &List{
		store:    store,
		gate:     opts.Gate,
		texts:    textsOrRaw(opts.Texts),
		page:     1,
		perPage:  opts.PerPage,
		selected: make(map[string]struct{}),
		mode:     opts.Mode,
	}
	if l.gate == nil {
		l.gate = confirm.Always(false)
	}
	if l.perPage < 1 {
		l.perPage = DefaultPerPage
	}
	if l.mode == "" {
		l.mode = ViewList
	}
	l.data = store.List()
	l.unsubscribe = store.Subscribe(l.refresh)
	return l
}

// Close detaches the list from the store.
func (l *List) Close() {
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
}

func (l *List) refresh() {
	l.data = l.store.List()
	ids := make(map[string]struct{}, len(l.data))
	for _, e := range l.data {
		ids[e.ID] = struct{}{}
	}
	for id := range l.selected {
		if _, ok := ids[id]; !ok {
			delete(l.selected, id)
		}
	}
	l.page = clamp(l.page, 1, l.PageCount())
}

// Query is the current search text.
func (l *List) Query() string { return l.query }

// SetQuery changes the search text and returns to the first page.
func (l *List) SetQuery(q string) {
	l.query = q
	l.page = 1
}

// Filtered returns the records whose name, email, department or position
// contain the query, ignoring case. The query is matched as typed,
// surrounding spaces included. Store order is kept.
func (l *List) Filtered() []models.Employee {
	q := l.query
	if q == "" {
		out := make([]models.Employee, len(l.data))
		copy(out, l.data)
		return out
	}

	fold := cases.Fold()
	needle := fold.String(q)
	out := make([]models.Employee, 0, len(l.data))
	for _, e := range l.data {
		hay := strings.Join([]string{e.FirstName, e.LastName, e.Email, string(e.Department), string(e.Position)}, " ")
		if strings.Contains(fold.String(hay), needle) {
			out = append(out, e)
		}
	}
	return out
}

// Paged is the slice of Filtered shown on the current page.
func (l *List) Paged() []models.Employee {
	f := l.Filtered()
	start := (l.page - 1) * l.perPage
	if start >= len(f) {
		return []models.Employee{}
	}
	end := min(start+l.perPage, len(f))
	return f[start:end]
}

// PageCount is ceil(filtered/perPage), never less than one.
func (l *List) PageCount() int {
	n := len(l.Filtered())
	return max(1, (n+l.perPage-1)/l.perPage)
}

func (l *List) Page() int    { return l.page }
func (l *List) PerPage() int { return l.perPage }

// SetPage moves to p clamped into [1, PageCount].
func (l *List) SetPage(p int) {
	l.page = clamp(p, 1, l.PageCount())
}

func (l *List) NextPage() { l.SetPage(l.page + 1) }
func (l *List) PrevPage() { l.SetPage(l.page - 1) }

// SetPerPage changes the page size; values below one are rejected.
func (l *List) SetPerPage(n int) error {
	if n < 1 {
		return fmt.Errorf("items per page %d: %w", n, common.ErrorInvalidInput)
	}
	l.perPage = n
	l.page = clamp(l.page, 1, l.PageCount())
	return nil
}

// SetNarrow switches the pager to its compact form.
func (l *List) SetNarrow(narrow bool) { l.narrow = narrow }
func (l *List) Narrow() bool          { return l.narrow }

// Pages summarizes the pager for the current layout.
func (l *List) Pages() []PageItem {
	if l.narrow {
		return SummarizePagesNarrow(l.page, l.PageCount())
	}
	return SummarizePages(l.page, l.PageCount())
}

// Toggle selects or deselects id. Unknown ids are ignored and reported as
// false.
func (l *List) Toggle(id string, on bool) bool {
	if _, ok := l.store.GetByID(id); !ok {
		return false
	}
	if on {
		l.selected[id] = struct{}{}
	} else {
		delete(l.selected, id)
	}
	return true
}

// ToggleAllFiltered selects or deselects exactly the filtered records;
// selections outside the filter are kept.
func (l *List) ToggleAllFiltered(on bool) {
	for _, e := range l.Filtered() {
		if on {
			l.selected[e.ID] = struct{}{}
		} else {
			delete(l.selected, e.ID)
		}
	}
}

func (l *List) IsSelected(id string) bool {
	_, ok := l.selected[id]
	return ok
}

// SelectedIDs lists the selected ids in store order.
func (l *List) SelectedIDs() []string {
	out := make([]string, 0, len(l.selected))
	for _, e := range l.data {
		if l.IsSelected(e.ID) {
			out = append(out, e.ID)
		}
	}
	return out
}

// Selection derives the header checkbox state from the filtered records.
func (l *List) Selection() SelectionState {
	f := l.Filtered()
	n := 0
	for _, e := range f {
		if l.IsSelected(e.ID) {
			n++
		}
	}
	switch {
	case n == 0:
		return SelectionNone
	case n == len(f):
		return SelectionAll
	default:
		return SelectionSome
	}
}

// SetViewMode picks list or table rendering.
func (l *List) SetViewMode(m ViewMode) error {
	if m != ViewList && m != ViewTable {
		return fmt.Errorf("view mode %q: %w", m, common.ErrorInvalidInput)
	}
	l.mode = m
	return nil
}

// SetForceTable forces table rendering while the screen is too small for
// the list layout.
func (l *List) SetForceTable(on bool) { l.forceTable = on }

// ViewMode is the effective mode.
func (l *List) ViewMode() ViewMode {
	if l.forceTable {
		return ViewTable
	}
	return l.mode
}

// Delete asks the gate to confirm removing id and removes it only on an
// explicit yes. It reports whether the record was removed. An unknown id
// wraps common.ErrorNotFound.
func (l *List) Delete(ctx context.Context, id string) (bool, error) {
	e, ok := l.store.GetByID(id)
	if !ok {
		return false, fmt.Errorf("delete employee %s: %w", id, common.ErrorNotFound)
	}

	ok, err := l.gate.Ask(ctx, confirm.Request{
		Title:        l.texts.T(i18n.AreYouSure),
		Message:      fmt.Sprintf("%s %s %s", l.texts.T(i18n.SelectedEmployeeRecordOf), e.FullName(), l.texts.T(i18n.WillBeDeleted)),
		ConfirmLabel: l.texts.T(i18n.Proceed),
		CancelLabel:  l.texts.T(i18n.Cancel),
	})
	if err != nil || !ok {
		return false, err
	}

	removed, err := l.store.Remove(ctx, id)
	delete(l.selected, id)
	if l.page > l.PageCount() {
		l.page = l.PageCount()
	}
	return removed, err
}
