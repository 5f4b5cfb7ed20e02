// Package route maps navigation paths to the three screens of the app.
package route

import (
	"net/url"
	"regexp"
	"strings"
)

// Kind identifies a screen.
type Kind int

const (
	KindList Kind = iota
	KindCreate
	KindEdit
)

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindEdit:
		return "edit"
	default:
		return "list"
	}
}

const (
	PathRoot      = "/"
	PathEmployees = "/employees"
	PathNew       = "/employees/new"
)

var editRe = regexp.MustCompile(`^/employees/([^/]+)/edit/?$`)

// Route is a resolved path. ID is set only for KindEdit.
type Route struct {
	Kind Kind
	ID   string
}

// Parse resolves path. The root and any unknown path redirect to the list.
func Parse(path string) Route {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)

	if m := editRe.FindStringSubmatch(path); m != nil {
		id, err := url.PathUnescape(m[1])
		if err != nil {
			id = m[1]
		}
		return Route{Kind: KindEdit, ID: id}
	}

	switch strings.TrimSuffix(path, "/") {
	case PathNew:
		return Route{Kind: KindCreate}
	}
	return List()
}

// Path renders r back into its canonical path.
func (r Route) Path() string {
	switch r.Kind {
	case KindCreate:
		return PathNew
	case KindEdit:
		return EditPath(r.ID)
	default:
		return PathEmployees
	}
}

func List() Route   { return Route{Kind: KindList} }
func Create() Route { return Route{Kind: KindCreate} }
func Edit(id string) Route {
	return Route{Kind: KindEdit, ID: id}
}

// EditPath is the path of the edit screen for id.
func EditPath(id string) string {
	return PathEmployees + "/" + url.PathEscape(id) + "/edit"
}

// Outcome tells the host where to go after a form action. The zero value
// means stay on the current screen.
type Outcome struct {
	Navigate bool
	To       Route
}

// Stay keeps the current screen.
var Stay = Outcome{}

// NavigateList returns to the employee list.
var NavigateList = Outcome{Navigate: true, To: List()}
