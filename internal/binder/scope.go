package binder

import "github.com/google/uuid"

// Scope pairs a binder (plus an optional embedded payload) with a body term.
// It owns the contract for introducing and eliminating one layer of binding:
// the body may reference the binder identity only through occurrences built
// from the Binder handed to NewScope, and that identity can never be minted
// twice.
type Scope[T Term] struct {
	binder Binder
	embed  Embed
	body   T
}

// NewScope closes body over b. The body is stored as given; occurrences of
// b inside it are bound from here on.
func NewScope[T Term](b Binder, body T) Scope[T] {
	return Scope[T]{binder: b, body: body}
}

// NewScopeWith is NewScope with an embedded pattern payload. The payload is
// data riding along with the binder; it is never bound by b itself.
func NewScopeWith[T Term](b Binder, embed Embed, body T) Scope[T] {
	return Scope[T]{binder: b, embed: embed, body: body}
}

// Binder returns the scope's binding pattern.
func (s Scope[T]) Binder() Binder {
	return s.binder
}

// Embedded returns the pattern payload, if any.
func (s Scope[T]) Embedded() Embed {
	return s.embed
}

// Body returns the raw body with bound occurrences still referring to the
// scope's own binder. Callers that need a usable free variable must go
// through Unbind instead.
func (s Scope[T]) Body() T {
	return s.body
}

// WithBody rebuilds the scope around a new body, keeping binder and payload.
// This is the rebuild hook for substitution, which may recurse into the body
// unguarded: binder identities are globally unique, so a replacement's free
// variables can never collide with this scope's binder.
func (s Scope[T]) WithBody(body T) Scope[T] {
	return Scope[T]{binder: s.binder, embed: s.embed, body: body}
}

// Unbind opens the scope: it mints a fresh free variable for the binder and
// returns it together with a copy of the body in which every bound
// occurrence has been rewritten to that variable. Each call produces a
// distinct identity, so bodies from two unbinds of equal scopes are
// alpha-equivalent but not identical.
func (s Scope[T]) Unbind() (Var, T) {
	fresh := FreshVar(s.binder.Name)
	return fresh, s.unbindWith(fresh)
}

func (s Scope[T]) unbindWith(v Var) T {
	return s.body.Rename(s.binder.Unique, v).(T)
}

// TermEq reports alpha-equivalence of two scopes: embedded payloads must
// match as ordinary data, and the bodies must match when both are opened
// with the same fresh variable. Opening under a shared name is what makes
// differently-named but structurally identical lambdas compare equal.
func (s Scope[T]) TermEq(other Scope[T]) bool {
	if !s.embed.TermEq(other.embed) {
		return false
	}
	shared := FreshVar(s.binder.Name)
	return s.unbindWith(shared).TermEq(other.unbindWith(shared))
}

// Rename rewrites occurrences of from in the body and payload, leaving the
// binder untouched. The scope's own binder can never equal from because
// every binder identity is fresh.
func (s Scope[T]) Rename(from uuid.UUID, to Var) Scope[T] {
	return Scope[T]{
		binder: s.binder,
		embed:  s.embed.Rename(from, to).(Embed),
		body:   s.body.Rename(from, to).(T),
	}
}
