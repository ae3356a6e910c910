package binder

import "github.com/google/uuid"

// Term is the capability every node of a binding-aware AST must provide.
// Implementations are hand-written per concrete node type: non-binding nodes
// recurse pairwise into their children, scopes open both sides under a shared
// fresh variable before comparing.
type Term interface {
	// TermEq reports structural alpha-equivalence with other. Comparing
	// terms of different concrete types yields false, never an error.
	TermEq(other Term) bool

	// Rename returns a copy of the term with every occurrence of the
	// identity from rewritten to the occurrence to. It is the traversal
	// primitive behind unbinding and alpha-equivalence; general
	// substitution lives with each AST because replacements are
	// AST-specific.
	Rename(from uuid.UUID, to Var) Term
}

// Embed wraps a payload that rides along with a binder without introducing
// any binding structure of its own, e.g. an optional type annotation on a
// lambda parameter. Equivalence and renaming delegate to the payload; a nil
// payload stands for an absent annotation and equals only another nil.
type Embed struct {
	Payload Term
}

func (e Embed) TermEq(other Term) bool {
	o, ok := other.(Embed)
	if !ok {
		return false
	}
	if e.Payload == nil || o.Payload == nil {
		return e.Payload == nil && o.Payload == nil
	}
	return e.Payload.TermEq(o.Payload)
}

func (e Embed) Rename(from uuid.UUID, to Var) Term {
	if e.Payload == nil {
		return e
	}
	return Embed{Payload: e.Payload.Rename(from, to)}
}
