package typed

import (
	"fmt"
	"testing"

	"github.com/funvibe/moniker/internal/binder"
)

func TestContextInsertPersistence(t *testing.T) {
	x := binder.FreshVar("x")
	y := binder.FreshVar("y")

	empty := NewContext()
	withX := empty.Insert(x, Int)
	withXY := withX.Insert(y, String)

	if empty.Len() != 0 {
		t.Fatalf("empty context grew to %d", empty.Len())
	}
	if _, ok := empty.Lookup(x); ok {
		t.Fatalf("insert mutated the original context")
	}
	if withX.Len() != 1 {
		t.Fatalf("withX.Len() = %d, want 1", withX.Len())
	}
	if _, ok := withX.Lookup(y); ok {
		t.Fatalf("sibling insert leaked into withX")
	}

	ty, ok := withXY.Lookup(x)
	if !ok || !ty.TermEq(Int) {
		t.Fatalf("withXY lost x: %v, %v", ty, ok)
	}
	ty, ok = withXY.Lookup(y)
	if !ok || !ty.TermEq(String) {
		t.Fatalf("withXY lost y: %v, %v", ty, ok)
	}
}

func TestContextShadowing(t *testing.T) {
	x := binder.FreshVar("x")

	old := NewContext().Insert(x, Int)
	updated := old.Insert(x, String)

	if updated.Len() != 1 {
		t.Fatalf("re-insert changed the count: %d", updated.Len())
	}
	ty, _ := updated.Lookup(x)
	if !ty.TermEq(String) {
		t.Fatalf("updated binding = %s, want String", ty)
	}
	ty, _ = old.Lookup(x)
	if !ty.TermEq(Int) {
		t.Fatalf("old context changed: %s, want Int", ty)
	}
}

func TestContextLookupByIdentityOnly(t *testing.T) {
	a := binder.FreshVar("same")
	b := binder.FreshVar("same")

	ctx := NewContext().Insert(a, Int)
	if _, ok := ctx.Lookup(b); ok {
		t.Fatalf("lookup matched on display name instead of identity")
	}
}

func TestContextManyBindings(t *testing.T) {
	ctx := NewContext()
	vars := make([]binder.Var, 0, 500)
	for i := 0; i < 500; i++ {
		v := binder.FreshVar(fmt.Sprintf("v%d", i))
		vars = append(vars, v)
		if i%2 == 0 {
			ctx = ctx.Insert(v, Int)
		} else {
			ctx = ctx.Insert(v, NewArrow(Int, String))
		}
	}

	if ctx.Len() != 500 {
		t.Fatalf("Len = %d, want 500", ctx.Len())
	}
	for i, v := range vars {
		ty, ok := ctx.Lookup(v)
		if !ok {
			t.Fatalf("binding %d vanished", i)
		}
		if i%2 == 0 && !ty.TermEq(Int) {
			t.Fatalf("binding %d = %s, want Int", i, ty)
		}
		if i%2 == 1 && !ty.TermEq(NewArrow(Int, String)) {
			t.Fatalf("binding %d = %s, want Int -> String", i, ty)
		}
	}
}
