package untyped

// Eval reduces e to normal form. Variables and lambdas are already normal.
// An application first reduces its head; if that yields a lambda, the scope
// is opened, the evaluated argument substituted for the fresh parameter and
// the result reduced further. A non-lambda head leaves the application
// untouched: stuck terms are returned as-is rather than reported, so Eval
// has no error channel. Termination is not guaranteed for the untyped
// calculus.
func Eval(e Expr) Expr {
	switch n := e.(type) {
	case *App:
		fun := Eval(n.Fun)
		if lam, ok := fun.(*Lam); ok {
			param, body := lam.Scope.Unbind()
			return Eval(Subst(body, param, Eval(n.Arg)))
		}
		return n
	default:
		return e
	}
}
