package typed

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/funvibe/moniker/internal/binder"
)

// Type is the interface for all types in the simply-typed calculus.
// Types implement binder.Term so annotations can ride along with lambda
// binders as embedded pattern payloads; they carry no term variables, so
// renaming is always the identity.
type Type interface {
	binder.Term
	typeNode()
	String() string
}

// Base is a ground type constant, compared by name.
type Base struct {
	Name string
}

// The three ground types of the calculus.
var (
	Int    Type = Base{Name: "Int"}
	Float  Type = Base{Name: "Float"}
	String Type = Base{Name: "String"}
)

// Arrow is a function type.
type Arrow struct {
	Param  Type
	Result Type
}

// NewArrow builds the function type param -> result.
func NewArrow(param, result Type) *Arrow {
	return &Arrow{Param: param, Result: result}
}

func (b Base) typeNode()   {}
func (a *Arrow) typeNode() {}

func (b Base) String() string {
	return b.Name
}

func (a *Arrow) String() string {
	if _, nested := a.Param.(*Arrow); nested {
		return fmt.Sprintf("(%s) -> %s", a.Param, a.Result)
	}
	return fmt.Sprintf("%s -> %s", a.Param, a.Result)
}

func (b Base) TermEq(other binder.Term) bool {
	o, ok := other.(Base)
	return ok && b.Name == o.Name
}

func (a *Arrow) TermEq(other binder.Term) bool {
	o, ok := other.(*Arrow)
	return ok && a.Param.TermEq(o.Param) && a.Result.TermEq(o.Result)
}

func (b Base) Rename(uuid.UUID, binder.Var) binder.Term {
	return b
}

func (a *Arrow) Rename(uuid.UUID, binder.Var) binder.Term {
	return a
}
