package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/empdir/internal/i18n"
	"github.com/dmitrijs2005/empdir/internal/models"
	"github.com/dmitrijs2005/empdir/internal/validators"
	"github.com/dmitrijs2005/empdir/internal/viewmodel"
)

// cancelInput abandons the form at any prompt.
const cancelInput = "/cancel"

// runForm prompts for every field, submits, and re-prompts only the failing
// fields until the form is saved or abandoned. In edit mode, and for fields
// that already hold a value, an empty answer keeps the value.
func (a *App) runForm(ctx context.Context, f *viewmodel.Form) error {
	if f.Mode() == viewmodel.ModeEdit {
		fmt.Fprintf(a.out, "== %s ==\n%s%s\n", a.tr.T(i18n.EditEmployee), a.tr.T(i18n.YouAreEditing), f.EditingName())
	} else {
		fmt.Fprintf(a.out, "== %s ==\n", a.tr.T(i18n.AddEmployee))
	}
	fmt.Fprintf(a.out, "(%s, %s)\n", a.tr.T(i18n.KeepValue), cancelInput)

	pending := validators.Fields
	for {
		for _, field := range pending {
			line, err := readAnswer(a.in, a.out, a.fieldPrompt(f, field))
			if err != nil {
				if errors.Is(err, io.EOF) {
					a.navigate(f.Cancel())
					return nil
				}
				return err
			}
			if line == cancelInput {
				a.navigate(f.Cancel())
				return nil
			}
			if line == "" && f.Value(field) != "" {
				continue
			}
			if err := f.Set(field, line); err != nil {
				return err
			}
		}

		out, err := f.Submit(ctx)
		var verrs validators.Errors
		if errors.As(err, &verrs) {
			renderErrors(a.out, verrs, a.tr)
			pending = failingFields(verrs)
			continue
		}
		if out.Navigate {
			a.navigate(out)
			return err
		}
		if err != nil {
			return err
		}
		// update declined: let the user revise every field again
		pending = validators.Fields
	}
}

func failingFields(errs validators.Errors) []validators.Field {
	var out []validators.Field
	for _, f := range validators.Fields {
		if _, ok := errs[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// fieldPrompt renders e.g. "Department (Analytics/Tech) [Tech]:".
func (a *App) fieldPrompt(f *viewmodel.Form, field validators.Field) string {
	var b strings.Builder
	b.WriteString(fieldLabel(a.tr, field))

	switch field {
	case validators.FieldDateOfEmployment, validators.FieldDateOfBirth:
		b.WriteString(" (DD-MM-YYYY)")
	case validators.FieldPhone:
		b.WriteString(" (" + strings.TrimSpace(validators.PhoneDisplayPrefix) + " XXX XXX XX XX)")
	case validators.FieldDepartment:
		b.WriteString(" (" + choices(models.Departments) + ")")
	case validators.FieldPosition:
		b.WriteString(" (" + choices(models.Positions) + ")")
	}

	if cur := f.Value(field); cur != "" {
		if field == validators.FieldPhone && validators.IsPhone(cur) {
			cur = validators.FormatPhone(cur)
		}
		b.WriteString(" [" + cur + "]")
	}
	b.WriteString(":")
	return b.String()
}

// choices lists the accepted input values, which are not localized.
func choices[T ~string](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, "/")
}
