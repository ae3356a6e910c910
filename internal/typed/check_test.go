package typed

import (
	"errors"
	"testing"

	"github.com/funvibe/moniker/internal/binder"
)

func TestInferAnnotatedIdentity(t *testing.T) {
	// λ(x : Int). x  infers  Int -> Int in the empty context.
	expr := NewLamAnn("x", Int, func(x binder.Var) Expr { return NewVar(x) })

	got, err := Infer(NewContext(), expr)
	if err != nil {
		t.Fatalf("Infer failed: %v", err)
	}
	want := NewArrow(Int, Int)
	if !got.TermEq(want) {
		t.Fatalf("Infer = %s, want %s", got, want)
	}
}

func TestInferMissingAnnotation(t *testing.T) {
	expr := NewLam("x", func(x binder.Var) Expr { return NewVar(x) })

	_, err := Infer(NewContext(), expr)
	var annErr *AnnotationRequiredError
	if !errors.As(err, &annErr) {
		t.Fatalf("Infer error = %v, want AnnotationRequiredError", err)
	}
	if annErr.Name != "x" {
		t.Fatalf("error names %q, want x", annErr.Name)
	}
}

func TestInferArgumentMismatch(t *testing.T) {
	// (λ(x : Int). x) "hello" fails on the argument position.
	expr := NewApp(
		NewLamAnn("x", Int, func(x binder.Var) Expr { return NewVar(x) }),
		NewLit(StringLit{Value: "hello"}),
	)

	_, err := Infer(NewContext(), expr)
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Infer error = %v, want TypeMismatchError", err)
	}
	if !mismatch.Expected.TermEq(Int) {
		t.Errorf("Expected = %s, want Int", mismatch.Expected)
	}
	if !mismatch.Found.TermEq(String) {
		t.Errorf("Found = %s, want String", mismatch.Found)
	}
}

func TestInferNotAFunction(t *testing.T) {
	expr := NewApp(NewLit(IntLit{Value: 1}), NewLit(IntLit{Value: 2}))

	_, err := Infer(NewContext(), expr)
	var notFn *NotAFunctionError
	if !errors.As(err, &notFn) {
		t.Fatalf("Infer error = %v, want NotAFunctionError", err)
	}
	if !notFn.Found.TermEq(Int) {
		t.Errorf("Found = %s, want Int", notFn.Found)
	}
}

func TestInferUnboundVariable(t *testing.T) {
	v := binder.FreshVar("ghost")

	_, err := Infer(NewContext(), NewVar(v))
	var unbound *UnboundVariableError
	if !errors.As(err, &unbound) {
		t.Fatalf("Infer error = %v, want UnboundVariableError", err)
	}
	if !unbound.Var.Eq(v) {
		t.Errorf("error reports the wrong variable: %s", unbound.Var)
	}
}

func TestInferLiterals(t *testing.T) {
	tests := []struct {
		name string
		lit  Literal
		want Type
	}{
		{"int", IntLit{Value: 42}, Int},
		{"float", FloatLit{Value: 1.5}, Float},
		{"string", StringLit{Value: "s"}, String},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Infer(NewContext(), NewLit(tt.lit))
			if err != nil {
				t.Fatalf("Infer failed: %v", err)
			}
			if !got.TermEq(tt.want) {
				t.Errorf("Infer = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestInferAnnotatedApplication(t *testing.T) {
	// (λ(f : Int -> Int). f 1) (λ(x : Int). x) infers Int.
	expr := NewApp(
		NewLamAnn("f", NewArrow(Int, Int), func(f binder.Var) Expr {
			return NewApp(NewVar(f), NewLit(IntLit{Value: 1}))
		}),
		NewLamAnn("x", Int, func(x binder.Var) Expr { return NewVar(x) }),
	)

	got, err := Infer(NewContext(), expr)
	if err != nil {
		t.Fatalf("Infer failed: %v", err)
	}
	if !got.TermEq(Int) {
		t.Fatalf("Infer = %s, want Int", got)
	}
}

func TestCheckPushesAnnotationIn(t *testing.T) {
	// An unannotated lambda checked against an arrow gets its parameter
	// type from the arrow's domain.
	ident := NewLam("x", func(x binder.Var) Expr { return NewVar(x) })
	if err := Check(NewContext(), ident, NewArrow(Int, Int)); err != nil {
		t.Fatalf("Check(λx. x, Int -> Int) failed: %v", err)
	}
	if err := Check(NewContext(), ident, NewArrow(String, String)); err != nil {
		t.Fatalf("Check(λx. x, String -> String) failed: %v", err)
	}

	// Against a non-arrow it falls through to inference, which cannot
	// type the parameter.
	err := Check(NewContext(), ident, Int)
	var annErr *AnnotationRequiredError
	if !errors.As(err, &annErr) {
		t.Fatalf("Check(λx. x, Int) error = %v, want AnnotationRequiredError", err)
	}
}

func TestCheckAnnotatedLambda(t *testing.T) {
	// An annotated lambda never takes the push-in rule: the annotation is
	// trusted, the lambda's type is rebuilt from it by inference, and any
	// conflict with the expected arrow surfaces as a mismatch between the
	// two whole arrow types.
	matching := NewLamAnn("x", Int, func(x binder.Var) Expr { return NewVar(x) })
	if err := Check(NewContext(), matching, NewArrow(Int, Int)); err != nil {
		t.Fatalf("Check(λ(x : Int). x, Int -> Int) failed: %v", err)
	}

	conflicting := NewLamAnn("x", String, func(x binder.Var) Expr { return NewVar(x) })
	err := Check(NewContext(), conflicting, NewArrow(Int, Int))
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Check error = %v, want TypeMismatchError", err)
	}
	if !mismatch.Expected.TermEq(NewArrow(Int, Int)) {
		t.Errorf("Expected = %s, want Int -> Int", mismatch.Expected)
	}
	if !mismatch.Found.TermEq(NewArrow(String, String)) {
		t.Errorf("Found = %s, want String -> String", mismatch.Found)
	}
}

func TestCheckMismatch(t *testing.T) {
	err := Check(NewContext(), NewLit(IntLit{Value: 1}), String)
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Check error = %v, want TypeMismatchError", err)
	}
	if !mismatch.Expected.TermEq(String) || !mismatch.Found.TermEq(Int) {
		t.Errorf("mismatch = found %s expected %s", mismatch.Found, mismatch.Expected)
	}
}

func TestContextIsolationAcrossSiblings(t *testing.T) {
	f := binder.FreshVar("f")
	parent := NewContext().Insert(f, NewArrow(Int, Int))

	// Two sibling inferences extend the same parent independently.
	left := NewLamAnn("x", Int, func(x binder.Var) Expr {
		return NewApp(NewVar(f), NewVar(x))
	})
	right := NewLamAnn("y", String, func(y binder.Var) Expr { return NewVar(y) })

	leftTy, err := Infer(parent, left)
	if err != nil {
		t.Fatalf("left Infer failed: %v", err)
	}
	rightTy, err := Infer(parent, right)
	if err != nil {
		t.Fatalf("right Infer failed: %v", err)
	}

	if !leftTy.TermEq(NewArrow(Int, Int)) {
		t.Errorf("left = %s, want Int -> Int", leftTy)
	}
	if !rightTy.TermEq(NewArrow(String, String)) {
		t.Errorf("right = %s, want String -> String", rightTy)
	}

	// Neither sibling's parameter leaked into the shared parent.
	if parent.Len() != 1 {
		t.Fatalf("parent grew to %d bindings, want 1", parent.Len())
	}
	if _, ok := parent.Lookup(f); !ok {
		t.Fatalf("parent lost its own binding")
	}
}
