package binder

import (
	"fmt"

	"github.com/google/uuid"
)

// Var is an occurrence of a variable in a term. Identity lives entirely in
// Unique; Name is what gets printed and never participates in comparison,
// so two variables that happen to share a display name stay distinct.
type Var struct {
	Unique uuid.UUID
	Name   string
}

// FreshVar mints a variable with a brand-new identity.
func FreshVar(name string) Var {
	return Var{Unique: uuid.New(), Name: name}
}

// Eq reports whether both occurrences name the same variable.
func (v Var) Eq(other Var) bool {
	return v.Unique == other.Unique
}

func (v Var) String() string {
	if v.Name == "" {
		return fmt.Sprintf("_%s", v.Unique.String()[:8])
	}
	return v.Name
}

// Binder is the pattern introduced by a lambda: a display name plus the
// identity that occurrences in the scope body must carry to count as bound.
type Binder struct {
	Unique uuid.UUID
	Name   string
}

// NewBinder mints a binder with a fresh identity. Creating the binder and
// constructing its Scope are one atomic step from the caller's point of view:
// nothing else can ever produce an occurrence with this identity.
func NewBinder(name string) Binder {
	return Binder{Unique: uuid.New(), Name: name}
}

// Occurrence returns the variable occurrence that refers to this binder.
// It is how callers build scope bodies before handing them to NewScope.
func (b Binder) Occurrence() Var {
	return Var{Unique: b.Unique, Name: b.Name}
}

func (b Binder) String() string {
	return b.Name
}
