package typed

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/funvibe/moniker/internal/binder"
)

// Literal is a literal value together with its fixed ground type.
type Literal interface {
	litNode()
	TypeOf() Type
	String() string
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

// FloatLit is a floating point literal.
type FloatLit struct {
	Value float64
}

// StringLit is a string literal.
type StringLit struct {
	Value string
}

func (IntLit) litNode()    {}
func (FloatLit) litNode()  {}
func (StringLit) litNode() {}

func (IntLit) TypeOf() Type    { return Int }
func (FloatLit) TypeOf() Type  { return Float }
func (StringLit) TypeOf() Type { return String }

func (l IntLit) String() string    { return strconv.FormatInt(l.Value, 10) }
func (l FloatLit) String() string  { return strconv.FormatFloat(l.Value, 'g', -1, 64) }
func (l StringLit) String() string { return strconv.Quote(l.Value) }

// Expr is a node of the simply-typed calculus.
type Expr interface {
	binder.Term
	exprNode()
	String() string
}

// Ann attaches a type annotation to an expression.
type Ann struct {
	Expr Expr
	Type Type
}

// Lit wraps a literal value.
type Lit struct {
	Value Literal
}

// Var is a variable occurrence.
type Var struct {
	Occurrence binder.Var
}

// Lam is a lambda abstraction. The parameter's optional type annotation
// rides along with the binder as an embedded payload; a nil payload means
// the parameter is unannotated.
type Lam struct {
	Scope binder.Scope[Expr]
}

// App is a function application.
type App struct {
	Fun Expr
	Arg Expr
}

// NewAnn annotates expr with ty.
func NewAnn(expr Expr, ty Type) *Ann {
	return &Ann{Expr: expr, Type: ty}
}

// NewLit wraps a literal.
func NewLit(value Literal) *Lit {
	return &Lit{Value: value}
}

// NewVar wraps a variable occurrence.
func NewVar(v binder.Var) *Var {
	return &Var{Occurrence: v}
}

// NewLam builds an unannotated lambda, minting the binder and handing its
// occurrence to mk for use in the body.
func NewLam(name string, mk func(binder.Var) Expr) *Lam {
	b := binder.NewBinder(name)
	return &Lam{Scope: binder.NewScope[Expr](b, mk(b.Occurrence()))}
}

// NewLamAnn builds a lambda whose parameter is annotated with ann.
func NewLamAnn(name string, ann Type, mk func(binder.Var) Expr) *Lam {
	b := binder.NewBinder(name)
	return &Lam{Scope: binder.NewScopeWith[Expr](b, binder.Embed{Payload: ann}, mk(b.Occurrence()))}
}

// NewApp applies fun to arg.
func NewApp(fun, arg Expr) *App {
	return &App{Fun: fun, Arg: arg}
}

// Annotation returns the parameter's type annotation, or nil when absent.
func (l *Lam) Annotation() Type {
	if p := l.Scope.Embedded().Payload; p != nil {
		return p.(Type)
	}
	return nil
}

func (a *Ann) exprNode() {}
func (l *Lit) exprNode() {}
func (v *Var) exprNode() {}
func (l *Lam) exprNode() {}
func (a *App) exprNode() {}

func (a *Ann) String() string {
	return fmt.Sprintf("(%s : %s)", a.Expr, a.Type)
}

func (l *Lit) String() string {
	return l.Value.String()
}

func (v *Var) String() string {
	return v.Occurrence.String()
}

func (l *Lam) String() string {
	if ann := l.Annotation(); ann != nil {
		return fmt.Sprintf("λ(%s : %s). %s", l.Scope.Binder(), ann, l.Scope.Body())
	}
	return fmt.Sprintf("λ%s. %s", l.Scope.Binder(), l.Scope.Body())
}

func (a *App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

func (a *Ann) TermEq(other binder.Term) bool {
	o, ok := other.(*Ann)
	return ok && a.Expr.TermEq(o.Expr) && a.Type.TermEq(o.Type)
}

func (l *Lit) TermEq(other binder.Term) bool {
	o, ok := other.(*Lit)
	return ok && l.Value == o.Value
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

func (a *Ann) Rename(from uuid.UUID, to binder.Var) binder.Term {
	return &Ann{Expr: a.Expr.Rename(from, to).(Expr), Type: a.Type}
}

func (l *Lit) Rename(uuid.UUID, binder.Var) binder.Term {
	return l
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
