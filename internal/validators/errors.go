package validators

import (
	"sort"
	"strings"
)

// Field names a validated form field. Values match the record's JSON keys.
type Field string

const (
	FieldFirstName        Field = "firstName"
	FieldLastName         Field = "lastName"
	FieldDateOfEmployment Field = "dateOfEmployment"
	FieldDateOfBirth      Field = "dateOfBirth"
	FieldPhone            Field = "phone"
	FieldEmail            Field = "email"
	FieldDepartment       Field = "department"
	FieldPosition         Field = "position"
)

// Fields lists the form fields in display order.
var Fields = []Field{
	FieldFirstName, FieldLastName,
	FieldDateOfEmployment, FieldDateOfBirth,
	FieldPhone, FieldEmail,
	FieldDepartment, FieldPosition,
}

// Message keys reported by validation. They are also i18n keys.
const (
	MsgRequired       = "required"
	MsgInvalidDate    = "invalidDate"
	MsgDobInFuture    = "dobInFuture"
	MsgDoeInPast      = "doeInPast"
	MsgDobBeforeDoe   = "dobBeforeDoe"
	MsgInvalidPhone   = "invalidPhone"
	MsgInvalidEmail   = "invalidEmail"
	MsgEmailNotUnique = "emailNotUnique"
	MsgInvalidChoice  = "invalidChoice"
)

// Errors maps a field to the message key of its failing rule. A nil or empty
// map means the input is valid.
type Errors map[Field]string

func (e Errors) Error() string {
	keys := make([]string, 0, len(e))
	for f := range e {
		keys = append(keys, string(f))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[Field(k)])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// OK reports whether no field failed.
func (e Errors) OK() bool {
	return len(e) == 0
}
