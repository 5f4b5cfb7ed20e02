package i18n

// Key names a UI string. Unknown keys render as themselves.
type Key string

const (
	AppTitle                 Key = "appTitle"
	Employees                Key = "employees"
	AddNew                   Key = "addNew"
	EditEmployee             Key = "editEmployee"
	CreateEmployee           Key = "createEmployee"
	UpdateEmployee           Key = "updateEmployee"
	AddEmployee              Key = "addEmployee"
	EmployeeList             Key = "employeeList"
	Delete                   Key = "delete"
	Edit                     Key = "edit"
	Search                   Key = "search"
	SearchPlaceholder        Key = "searchPlaceholder"
	ListView                 Key = "listView"
	TableView                Key = "tableView"
	ItemsPerPage             Key = "itemsPerPage"
	Page                     Key = "page"
	Of                       Key = "of"
	ConfirmDelete            Key = "confirmDelete"
	ConfirmUpdate            Key = "confirmUpdate"
	FirstName                Key = "firstName"
	LastName                 Key = "lastName"
	DateOfEmployment         Key = "dateOfEmployment"
	DateOfBirth              Key = "dateOfBirth"
	PhoneNumber              Key = "phoneNumber"
	EmailAddress             Key = "emailAddress"
	Department               Key = "department"
	Position                 Key = "position"
	DepartmentAnalytics      Key = "departmentAnalytics"
	DepartmentTech           Key = "departmentTech"
	PositionJunior           Key = "positionJunior"
	PositionMedior           Key = "positionMedior"
	PositionSenior           Key = "positionSenior"
	Required                 Key = "required"
	InvalidEmail             Key = "invalidEmail"
	InvalidPhone             Key = "invalidPhone"
	InvalidDate              Key = "invalidDate"
	InvalidChoice            Key = "invalidChoice"
	DobInFuture              Key = "dobInFuture"
	DoeInPast                Key = "doeInPast"
	DobBeforeDoe             Key = "dobBeforeDoe"
	EmailNotUnique           Key = "emailNotUnique"
	Save                     Key = "save"
	Cancel                   Key = "cancel"
	View                     Key = "view"
	Lang                     Key = "lang"
	Empty                    Key = "empty"
	Actions                  Key = "actions"
	YouAreEditing            Key = "youAreEditing"
	Proceed                  Key = "proceed"
	AreYouSure               Key = "areYouSure"
	SelectedEmployeeRecordOf Key = "selectedEmployeeRecordOf"
	WillBeDeleted            Key = "willBeDeleted"
	Selected                 Key = "selected"
	RecordGone               Key = "recordGone"
	PersistFailed            Key = "persistFailed"
	UnknownCommand           Key = "unknownCommand"
	Bye                      Key = "bye"
	Exported                 Key = "exported"
	Seeded                   Key = "seeded"
	KeepValue                Key = "keepValue"
)

// AllKeys lists every key both dictionaries must define.
var AllKeys = []Key{
	AppTitle, Employees, AddNew, EditEmployee, CreateEmployee, UpdateEmployee,
	AddEmployee, EmployeeList, Delete, Edit, Search, SearchPlaceholder,
	ListView, TableView, ItemsPerPage, Page, Of, ConfirmDelete, ConfirmUpdate,
	FirstName, LastName, DateOfEmployment, DateOfBirth, PhoneNumber,
	EmailAddress, Department, Position, DepartmentAnalytics, DepartmentTech,
	PositionJunior, PositionMedior, PositionSenior, Required, InvalidEmail,
	InvalidPhone, InvalidDate, InvalidChoice, DobInFuture, DoeInPast,
	DobBeforeDoe, EmailNotUnique, Save, Cancel, View, Lang, Empty, Actions,
	YouAreEditing, Proceed, AreYouSure, SelectedEmployeeRecordOf,
	WillBeDeleted, Selected, RecordGone, PersistFailed, UnknownCommand, Bye,
	Exported, Seeded, KeepValue,
}
