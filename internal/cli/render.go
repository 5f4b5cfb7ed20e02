package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/empdir/internal/i18n"
	"github.com/dmitrijs2005/empdir/internal/models"
	"github.com/dmitrijs2005/empdir/internal/validators"
	"github.com/dmitrijs2005/empdir/internal/viewmodel"
)

var fieldLabels = map[validators.Field]i18n.Key{
	validators.FieldFirstName:        i18n.FirstName,
	validators.FieldLastName:         i18n.LastName,
	validators.FieldDateOfEmployment: i18n.DateOfEmployment,
	validators.FieldDateOfBirth:      i18n.DateOfBirth,
	validators.FieldPhone:            i18n.PhoneNumber,
	validators.FieldEmail:            i18n.EmailAddress,
	validators.FieldDepartment:       i18n.Department,
	validators.FieldPosition:         i18n.Position,
}

var departmentLabels = map[models.Department]i18n.Key{
	models.DepartmentAnalytics: i18n.DepartmentAnalytics,
	models.DepartmentTech:      i18n.DepartmentTech,
}

var positionLabels = map[models.Position]i18n.Key{
	models.PositionJunior: i18n.PositionJunior,
	models.PositionMedior: i18n.PositionMedior,
	models.PositionSenior: i18n.PositionSenior,
}

func fieldLabel(t viewmodel.Texts, f validators.Field) string {
	if k, ok := fieldLabels[f]; ok {
		return t.T(k)
	}
	return string(f)
}

func departmentLabel(t viewmodel.Texts, d models.Department) string {
	if k, ok := departmentLabels[d]; ok {
		return t.T(k)
	}
	return string(d)
}

func positionLabel(t viewmodel.Texts, p models.Position) string {
	if k, ok := positionLabels[p]; ok {
		return t.T(k)
	}
	return string(p)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func selectionBox(s viewmodel.SelectionState) string {
	switch s {
	case viewmodel.SelectionAll:
		return "[x]"
	case viewmodel.SelectionSome:
		return "[-]"
	}
	return "[ ]"
}

// renderList draws the current page of l: a heading, the rows or cards, the
// pager and a status line.
func renderList(w io.Writer, l *viewmodel.List, t viewmodel.Texts) {
	fmt.Fprintf(w, "== %s ==\n", t.T(i18n.EmployeeList))
	if q := l.Query(); q != "" {
		fmt.Fprintf(w, "%s: %q\n", t.T(i18n.Search), q)
	}

	rows := l.Paged()
	switch {
	case len(rows) == 0:
		fmt.Fprintln(w, t.T(i18n.Empty))
	case l.ViewMode() == viewmodel.ViewTable:
		renderCards(w, l, rows, t)
	default:
		renderRows(w, l, rows, t)
	}

	fmt.Fprintln(w, viewmodel.RenderPager(l.Pages(), l.Page(), l.PageCount()))
	fmt.Fprintf(w, "%s %d %s %d | %s: %d | %s: %d\n",
		t.T(i18n.Page), l.Page(), t.T(i18n.Of), l.PageCount(),
		t.T(i18n.ItemsPerPage), l.PerPage(),
		t.T(i18n.Selected), len(l.SelectedIDs()))
}

func renderRows(w io.Writer, l *viewmodel.List, rows []models.Employee, t viewmodel.Texts) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{selectionBox(l.Selection())}
	for _, f := range validators.Fields {
		header = append(header, fieldLabel(t, f))
	}
	header = append(header, "ID")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, e := range rows {
		fmt.Fprintln(tw, strings.Join([]string{
			checkbox(l.IsSelected(e.ID)),
			e.FirstName,
			e.LastName,
			e.DateOfEmployment,
			e.DateOfBirth,
			validators.FormatPhone(e.Phone),
			e.Email,
			departmentLabel(t, e.Department),
			positionLabel(t, e.Position),
			e.ID,
		}, "\t"))
	}
	tw.Flush()
}

func renderCards(w io.Writer, l *viewmodel.List, rows []models.Employee, t viewmodel.Texts) {
	for _, e := range rows {
		fmt.Fprintf(w, "%s %s %s\n", checkbox(l.IsSelected(e.ID)), e.FirstName, e.LastName)
		tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
		fmt.Fprintf(tw, "  %s:\t%s\n", t.T(i18n.DateOfEmployment), e.DateOfEmployment)
		fmt.Fprintf(tw, "  %s:\t%s\n", t.T(i18n.DateOfBirth), e.DateOfBirth)
		fmt.Fprintf(tw, "  %s:\t%s\n", t.T(i18n.PhoneNumber), validators.FormatPhone(e.Phone))
		fmt.Fprintf(tw, "  %s:\t%s\n", t.T(i18n.EmailAddress), e.Email)
		fmt.Fprintf(tw, "  %s:\t%s\n", t.T(i18n.Department), departmentLabel(t, e.Department))
		fmt.Fprintf(tw, "  %s:\t%s\n", t.T(i18n.Position), positionLabel(t, e.Position))
		fmt.Fprintf(tw, "  ID:\t%s\n", e.ID)
		tw.Flush()
		fmt.Fprintln(w, "  ---")
	}
}

// renderErrors prints one localized line per failing field, in form order.
func renderErrors(w io.Writer, errs validators.Errors, t viewmodel.Texts) {
	for _, f := range validators.Fields {
		if msg, ok := errs[f]; ok {
			fmt.Fprintf(w, "  %s: %s\n", fieldLabel(t, f), t.T(i18n.Key(msg)))
		}
	}
}
