package typed

import "github.com/funvibe/moniker/internal/binder"

// Subst replaces every free occurrence of target in e with repl. Annotation
// payloads pass through untouched since types carry no term variables.
// Recursion into scope bodies needs no shadowing check: binder identities
// are globally unique and can never equal target.
func Subst(e Expr, target binder.Var, repl Expr) Expr {
	switch n := e.(type) {
	case *Ann:
		return &Ann{Expr: Subst(n.Expr, target, repl), Type: n.Type}
	case *Var:
		if n.Occurrence.Eq(target) {
			return repl
		}
		return n
	case *Lam:
		return &Lam{Scope: n.Scope.WithBody(Subst(n.Scope.Body(), target, repl))}
	case *App:
		return &App{
			Fun: Subst(n.Fun, target, repl),
			Arg: Subst(n.Arg, target, repl),
		}
	default:
		return e
	}
}
