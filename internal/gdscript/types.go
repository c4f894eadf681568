// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package gdscript

// ProjectInfo identifies the project a class dump was taken from.
type ProjectInfo struct {
	Name        string
	Version     string
	Description string
}

// Class is one scripted type from the dump.
type Class struct {
	Name string
	// Inherits names the parent class. It is a reference only; the parent
	// may or may not be part of the same dump.
	Inherits    Optional[string]
	Path        string // res:// script path
	Description string
	Members     []Member
	Signals     []Signal
	Enums       []Enum
	Constants   []Constant
	Methods     []Method
}

// Member is an exported property.
type Member struct {
	Name        string
	Type        string
	Default     Optional[string]
	Setter      string
	Getter      string
	Signature   string
	Description string
}

// Signal is a declared signal.
type Signal struct {
	Name        string
	Arguments   []string
	Signature   string
	Description string
}

// EnumValue is a single named enum entry.
type EnumValue struct {
	Name  string
	Value int64
}

// Enum is a named enumeration.
type Enum struct {
	Name        string
	Values      []EnumValue
	Description string
}

// Constant is a class-level constant. Value holds the literal as text.
type Constant struct {
	Name        string
	Type        string
	Value       string
	Description string
}

// Argument is a single method parameter.
type Argument struct {
	Name string
	Type string
}

// Method is a function declared on a class.
type Method struct {
	Name        string
	ReturnType  string
	Arguments   []Argument
	Signature   string
	Static      bool
	Description string
}

// IsPrivate reports whether a declared name follows the leading-underscore
// convention for private symbols.
func IsPrivate(name string) bool {
	return len(name) > 0 && name[0] == '_'
}
