package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/empdir/internal/common"
	"github.com/dmitrijs2005/empdir/internal/confirm"
	"github.com/dmitrijs2005/empdir/internal/i18n"
	"github.com/dmitrijs2005/empdir/internal/models"
	"github.com/dmitrijs2005/empdir/internal/route"
	v "github.com/dmitrijs2005/empdir/internal/validators"
)

// FormMode tells whether a form creates a record or edits one.
type FormMode string

const (
	ModeCreate FormMode = "create"
	ModeEdit   FormMode = "edit"
)

// FormStore is what the form needs from the record store.
type FormStore interface {
	GetByID(id string) (models.Employee, bool)
	IsEmailUnique(email, excludeID string) bool
	Add(ctx context.Context, d models.Draft) (models.Employee, error)
	Update(ctx context.Context, id string, p models.Patch) (models.Employee, error)
}

// FormOptions configures a Form. Gate, when set, must confirm an edit
// before it is committed. Now defaults to time.Now.
type FormOptions struct {
	Gate  confirm.Gate
	Texts Texts
	Now   func() time.Time
}

// Form is the state of the create/edit screen.
type Form struct {
	store FormStore
	gate  confirm.Gate
	texts Texts
	now   func() time.Time

	mode        FormMode
	id          string
	editingName string
	draft       models.Draft
	errors      v.Errors
}

// NewCreateForm starts a blank form.
func NewCreateForm(store FormStore, opts FormOptions) *Form {
	return newForm(store, opts, ModeCreate)
}

// NewEditForm loads the record with id. The phone is normalized and the
// record's name is captured once for EditingName. An unknown id wraps
// common.ErrorNotFound.
func NewEditForm(store FormStore, id string, opts FormOptions) (*Form, error) {
	e, ok := store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("edit employee %s: %w", id, common.ErrorNotFound)
	}
	f := newForm(store, opts, ModeEdit)
	f.id = id
	f.draft = e.Draft()
	f.draft.Phone = v.NormalizePhone(e.Phone)
	f.editingName = e.FullName()
	return f, nil
}

func newForm(store FormStore, opts FormOptions, mode FormMode) *Form {
	f := &Form{
		store: store,
		gate:  opts.Gate,
		texts: textsOrRaw(opts.Texts),
		now:   opts.Now,
		mode:  mode,
	}
	if f.now == nil {
		f.now = time.Now
	}
	return f
}

func (f *Form) Mode() FormMode { return f.mode }

// ID is the edited record's id, empty in create mode.
func (f *Form) ID() string { return f.id }

// EditingName is the record's full name as it was when editing started.
// It does not follow later edits to the name fields.
func (f *Form) EditingName() string { return f.editingName }

// Draft returns the current input.
func (f *Form) Draft() models.Draft { return f.draft }

// Errors returns the result of the last validation.
func (f *Form) Errors() v.Errors { return f.errors }

// Value returns the current raw value of field.
func (f *Form) Value(field v.Field) string {
	d := f.draft
	switch field {
	case v.FieldFirstName:
		return d.FirstName
	case v.FieldLastName:
		return d.LastName
	case v.FieldDateOfEmployment:
		return d.DateOfEmployment
	case v.FieldDateOfBirth:
		return d.DateOfBirth
	case v.FieldPhone:
		return d.Phone
	case v.FieldEmail:
		return d.Email
	case v.FieldDepartment:
		return string(d.Department)
	case v.FieldPosition:
		return string(d.Position)
	}
	return ""
}

// Set stores user input for field. Phones are reduced to digits, dates are
// converted to ISO when possible (otherwise kept as typed so validation can
// flag them) and departments/positions are matched ignoring case.
func (f *Form) Set(field v.Field, value string) error {
	switch field {
	case v.FieldFirstName:
		f.draft.FirstName = value
	case v.FieldLastName:
		f.draft.LastName = value
	case v.FieldDateOfEmployment:
		f.draft.DateOfEmployment = normalizeDate(value)
	case v.FieldDateOfBirth:
		f.draft.DateOfBirth = normalizeDate(value)
	case v.FieldPhone:
		f.draft.Phone = v.NormalizePhone(value)
	case v.FieldEmail:
		f.draft.Email = value
	case v.FieldDepartment:
		if d, ok := models.ParseDepartment(value); ok {
			f.draft.Department = d
		} else {
			f.draft.Department = models.Department(strings.TrimSpace(value))
		}
	case v.FieldPosition:
		if p, ok := models.ParsePosition(value); ok {
			f.draft.Position = p
		} else {
			f.draft.Position = models.Position(strings.TrimSpace(value))
		}
	default:
		return fmt.Errorf("field %q: %w", field, common.ErrorInvalidInput)
	}
	return nil
}

func normalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if iso := v.ToISO(value); iso != "" {
		return iso
	}
	return value
}

// Validate checks the draft. Rules run in order and a later rule replaces
// an earlier message for the same field.
func (f *Form) Validate() v.Errors {
	d := f.draft
	now := f.now()
	e := v.Errors{}

	if !v.IsRequired(d.FirstName) {
		e[v.FieldFirstName] = v.MsgRequired
	}
	if !v.IsRequired(d.LastName) {
		e[v.FieldLastName] = v.MsgRequired
	}

	doeOK := v.IsDate(d.DateOfEmployment)
	dobOK := v.IsDate(d.DateOfBirth)
	if !doeOK {
		e[v.FieldDateOfEmployment] = v.MsgInvalidDate
	}
	if !dobOK {
		e[v.FieldDateOfBirth] = v.MsgInvalidDate
	}
	if dobOK && !v.NotFuture(d.DateOfBirth, now) {
		e[v.FieldDateOfBirth] = v.MsgDobInFuture
	}
	if doeOK && !v.NotFuture(d.DateOfEmployment, now) {
		e[v.FieldDateOfEmployment] = v.MsgDoeInPast
	}
	if dobOK && doeOK && !v.Before(d.DateOfBirth, d.DateOfEmployment) {
		e[v.FieldDateOfBirth] = v.MsgDobBeforeDoe
	}

	if !v.IsPhone(d.Phone) {
		e[v.FieldPhone] = v.MsgInvalidPhone
	}

	if !v.IsEmail(d.Email) {
		e[v.FieldEmail] = v.MsgInvalidEmail
	}
	if !f.store.IsEmailUnique(d.Email, f.id) {
		e[v.FieldEmail] = v.MsgEmailNotUnique
	}

	switch {
	case !v.IsRequired(string(d.Department)):
		e[v.FieldDepartment] = v.MsgRequired
	default:
		if _, ok := models.ParseDepartment(string(d.Department)); !ok {
			e[v.FieldDepartment] = v.MsgInvalidChoice
		}
	}
	switch {
	case !v.IsRequired(string(d.Position)):
		e[v.FieldPosition] = v.MsgRequired
	default:
		if _, ok := models.ParsePosition(string(d.Position)); !ok {
			e[v.FieldPosition] = v.MsgInvalidChoice
		}
	}

	f.errors = e
	return e
}

// Submit validates and commits. Invalid input returns the validators.Errors
// and stays on the form. In edit mode the gate, if any, must confirm first;
// a declined confirmation also stays. After a commit the outcome is
// route.NavigateList even when the returned error reports that saving to
// disk failed.
func (f *Form) Submit(ctx context.Context) (route.Outcome, error) {
	if errs := f.Validate(); !errs.OK() {
		return route.Stay, errs
	}
	d := f.cleanDraft()

	if f.mode == ModeCreate {
		_, err := f.store.Add(ctx, d)
		if err != nil && !common.IsPersistence(err) {
			return route.Stay, err
		}
		return route.NavigateList, err
	}

	if f.gate != nil {
		ok, err := f.gate.Ask(ctx, confirm.Request{
			Title:        f.texts.T(i18n.AreYouSure),
			Message:      f.texts.T(i18n.ConfirmUpdate) + " " + f.editingName,
			ConfirmLabel: f.texts.T(i18n.Proceed),
			CancelLabel:  f.texts.T(i18n.Cancel),
		})
		if err != nil {
			return route.Stay, err
		}
		if !ok {
			return route.Stay, nil
		}
	}

	_, err := f.store.Update(ctx, f.id, models.PatchFrom(d))
	if err != nil && !common.IsPersistence(err) {
		if errors.Is(err, common.ErrorNotFound) {
			return route.NavigateList, err
		}
		return route.Stay, err
	}
	return route.NavigateList, err
}

// Cancel leaves the form without saving.
func (f *Form) Cancel() route.Outcome {
	return route.NavigateList
}

func (f *Form) cleanDraft() models.Draft {
	d := f.draft
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = v.NormalizePhone(d.Phone)
	d.Department, _ = models.ParseDepartment(string(d.Department))
	d.Position, _ = models.ParsePosition(string(d.Position))
	return d
}
