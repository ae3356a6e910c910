package typed

import "fmt"

// Check verifies that expr conforms to want under ctx.
//
// The one rule of its own covers an unannotated lambda checked against an
// arrow: the parameter's type is pushed in from the arrow's domain, so call
// sites and outer annotations spare the programmer per-parameter
// annotations. An annotated lambda takes the fall-through path instead: the
// annotation is trusted, Infer rebuilds the lambda's type from it, and any
// conflict with want surfaces as a mismatch on the whole lambda type.
// Everything else infers and compares up to alpha-equivalence.
func Check(ctx *Context, expr Expr, want Type) error {
	if lam, ok := expr.(*Lam); ok && lam.Annotation() == nil {
		if arrow, ok := want.(*Arrow); ok {
			param, body := lam.Scope.Unbind()
			return Check(ctx.Insert(param, arrow.Param), body, arrow.Result)
		}
	}

	found, err := Infer(ctx, expr)
	if err != nil {
		return err
	}
	if !found.TermEq(want) {
		return NewTypeMismatchError(want, found)
	}
	return nil
}

// Infer synthesizes the type of expr under ctx. The first failure
// propagates to the caller unchanged.
func Infer(ctx *Context, expr Expr) (Type, error) {
	switch n := expr.(type) {
	case *Ann:
		if err := Check(ctx, n.Expr, n.Type); err != nil {
			return nil, err
		}
		return n.Type, nil

	case *Lit:
		return n.Value.TypeOf(), nil

	case *Var:
		if ty, ok := ctx.Lookup(n.Occurrence); ok {
			return ty, nil
		}
		return nil, NewUnboundVariableError(n.Occurrence)

	case *Lam:
		ann := n.Annotation()
		if ann == nil {
			return nil, NewAnnotationRequiredError(n.Scope.Binder().Name)
		}
		param, body := n.Scope.Unbind()
		bodyTy, err := Infer(ctx.Insert(param, ann), body)
		if err != nil {
			return nil, err
		}
		return NewArrow(ann, bodyTy), nil

	case *App:
		funTy, err := Infer(ctx, n.Fun)
		if err != nil {
			return nil, err
		}
		arrow, ok := funTy.(*Arrow)
		if !ok {
			return nil, NewNotAFunctionError(funTy)
		}
		argTy, err := Infer(ctx, n.Arg)
		if err != nil {
			return nil, err
		}
		if !argTy.TermEq(arrow.Param) {
			return nil, NewTypeMismatchError(arrow.Param, argTy)
		}
		return arrow.Result, nil

	default:
		panic(fmt.Sprintf("typed: unexpected expression node %T", expr))
	}
}
