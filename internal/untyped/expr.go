package untyped

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/funvibe/moniker/internal/binder"
)

// Expr is a node of the untyped lambda calculus. Nodes are immutable once
// built; children are shared by pointer and rebuilt, never mutated.
type Expr interface {
	binder.Term
	exprNode()
	String() string
}

// Var is a variable occurrence.
type Var struct {
	Occurrence binder.Var
}

// Lam is a lambda abstraction; its parameter and body live in a scope.
type Lam struct {
	Scope binder.Scope[Expr]
}

// App is a function application.
type App struct {
	Fun Expr
	Arg Expr
}

// NewVar wraps a variable occurrence in an expression node.
func NewVar(v binder.Var) *Var {
	return &Var{Occurrence: v}
}

// NewLam builds a lambda in one atomic step: it mints the binder, hands the
// bound occurrence to mk so the body can reference it, and closes the scope.
func NewLam(name string, mk func(binder.Var) Expr) *Lam {
	b := binder.NewBinder(name)
	return &Lam{Scope: binder.NewScope[Expr](b, mk(b.Occurrence()))}
}

// NewApp applies fun to arg.
func NewApp(fun, arg Expr) *App {
	return &App{Fun: fun, Arg: arg}
}

func (v *Var) exprNode() {}
func (l *Lam) exprNode() {}
func (a *App) exprNode() {}

func (v *Var) String() string {
	return v.Occurrence.String()
}

func (l *Lam) String() string {
	return fmt.Sprintf("λ%s. %s", l.Scope.Binder(), l.Scope.Body())
}

func (a *App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

func (v *Var) TermEq(other binder.Term) bool {
	o, ok := other.(*Var)
	return ok && v.Occurrence.Eq(o.Occurrence)
}

func (l *Lam) TermEq(other binder.Term) bool {
	o, ok := other.(*Lam)
	return ok && l.Scope.TermEq(o.Scope)
}

func (a *App) TermEq(other binder.Term) bool {
	o, ok := other.(*App)
	return ok && a.Fun.TermEq(o.Fun) && a.Arg.TermEq(o.Arg)
}

func (v *Var) Rename(from uuid.UUID, to binder.Var) binder.Term {
	if v.Occurrence.Unique == from {
		return &Var{Occurrence: to}
	}
	return v
}

func (l *Lam) Rename(from uuid.UUID, to binder.Var) binder.Term {
	return &Lam{Scope: l.Scope.Rename(from, to)}
}

func (a *App) Rename(from uuid.UUID, to binder.Var) binder.Term {
	return &App{
		Fun: a.Fun.Rename(from, to).(Expr),
		Arg: a.Arg.Rename(from, to).(Expr),
	}
}
