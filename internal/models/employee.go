// Package models defines the employee record and the value types used to
// create and change it.
package models

import "strings"

// Department is one of a fixed set of departments.
type Department string

const (
	DepartmentAnalytics Department = "Analytics"
	DepartmentTech      Department = "Tech"
)

// Departments lists every valid department in display order.
var Departments = []Department{DepartmentAnalytics, DepartmentTech}

// Position is one of a fixed set of seniority levels.
type Position string

const (
	PositionJunior Position = "Junior"
	PositionMedior Position = "Medior"
	PositionSenior Position = "Senior"
)

// Positions lists every valid position in display order.
var Positions = []Position{PositionJunior, PositionMedior, PositionSenior}

// ParseDepartment matches s case-insensitively against Departments.
func ParseDepartment(s string) (Department, bool) {
	s = strings.TrimSpace(s)
	for _, d := range Departments {
		if strings.EqualFold(string(d), s) {
			return d, true
		}
	}
	return "", false
}

// ParsePosition matches s case-insensitively against Positions.
func ParsePosition(s string) (Position, bool) {
	s = strings.TrimSpace(s)
	for _, p := range Positions {
		if strings.EqualFold(string(p), s) {
			return p, true
		}
	}
	return "", false
}

// Employee is one record of the directory. Dates are ISO YYYY-MM-DD strings
// and Phone holds exactly ten digits; presentation prefixes are never stored.
type Employee struct {
	ID               string     `json:"id"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	DateOfEmployment string     `json:"dateOfEmployment"`
	DateOfBirth      string     `json:"dateOfBirth"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	Department       Department `json:"department"`
	Position         Position   `json:"position"`
}

// FullName joins the trimmed non-empty name parts with a space.
func (e Employee) FullName() string {
	return joinName(e.FirstName, e.LastName)
}

// Draft returns the record's fields without its id.
func (e Employee) Draft() Draft {
	return Draft{
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		DateOfEmployment: e.DateOfEmployment,
		DateOfBirth:      e.DateOfBirth,
		Phone:            e.Phone,
		Email:            e.Email,
		Department:       e.Department,
		Position:         e.Position,
	}
}

// Draft is an employee that has not been committed yet.
type Draft struct {
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	DateOfEmployment string     `json:"dateOfEmployment"`
	DateOfBirth      string     `json:"dateOfBirth"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	Department       Department `json:"department"`
	Position         Position   `json:"position"`
}

// WithID turns the draft into a record.
func (d Draft) WithID(id string) Employee {
	return Employee{
		ID:               id,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		DateOfEmployment: d.DateOfEmployment,
		DateOfBirth:      d.DateOfBirth,
		Phone:            d.Phone,
		Email:            d.Email,
		Department:       d.Department,
		Position:         d.Position,
	}
}

// Patch holds the fields to change on an existing record; nil leaves a
// field untouched.
type Patch struct {
	FirstName        *string
	LastName         *string
	DateOfEmployment *string
	DateOfBirth      *string
	Phone            *string
	Email            *string
	Department       *Department
	Position         *Position
}

// PatchFrom builds a patch that overwrites every field with the draft's.
func PatchFrom(d Draft) Patch {
	return Patch{
		FirstName:        &d.FirstName,
		LastName:         &d.LastName,
		DateOfEmployment: &d.DateOfEmployment,
		DateOfBirth:      &d.DateOfBirth,
		Phone:            &d.Phone,
		Email:            &d.Email,
		Department:       &d.Department,
		Position:         &d.Position,
	}
}

// Apply returns e with the patch merged in. The id never changes.
func (p Patch) Apply(e Employee) Employee {
	if p.FirstName != nil {
		e.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		e.LastName = *p.LastName
	}
	if p.DateOfEmployment != nil {
		e.DateOfEmployment = *p.DateOfEmployment
	}
	if p.DateOfBirth != nil {
		e.DateOfBirth = *p.DateOfBirth
	}
	if p.Phone != nil {
		e.Phone = *p.Phone
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.Position != nil {
		e.Position = *p.Position
	}
	return e
}

func joinName(first, last string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{first, last} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
