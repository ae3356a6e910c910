package typed

// Eval reduces e to normal form, erasing annotations as it goes. Same
// discipline as the untyped evaluator: beta-reduce at the head, substitute
// the evaluated argument, and leave stuck applications unchanged. Run the
// checker first if getting stuck is unacceptable; Eval itself never errors.
func Eval(e Expr) Expr {
	switch n := e.(type) {
	case *Ann:
		return Eval(n.Expr)
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
