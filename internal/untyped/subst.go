package untyped

import "github.com/funvibe/moniker/internal/binder"

// Subst replaces every free occurrence of target in e with repl. Untouched
// subtrees are shared, touched spines rebuilt. Recursion goes straight into
// scope bodies: a binder identity is minted exactly once, so it can never
// equal target and no free variable of repl can be captured by it.
func Subst(e Expr, target binder.Var, repl Expr) Expr {
	switch n := e.(type) {
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
