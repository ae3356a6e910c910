package typed

import "github.com/funvibe/moniker/internal/binder"

// Context is a persistent mapping from free-variable identities to types.
// Insert returns a new context and never touches the receiver, so a context
// can be shared freely across sibling branches of Check and Infer without
// save/restore bookkeeping. Lookup goes by identity only; display names
// play no part.
type Context struct {
	root  *hamtNode
	count int
}

// NewContext returns the empty context.
func NewContext() *Context {
	return &Context{}
}

// Len returns the number of bindings.
func (c *Context) Len() int {
	return c.count
}

// Lookup returns the type bound to v's identity.
func (c *Context) Lookup(v binder.Var) (Type, bool) {
	if c.root == nil {
		return nil, false
	}
	return c.root.get(hashID(v.Unique), v.Unique, 0)
}

// Insert returns a new context with v bound to ty, shadowing any previous
// binding for the same identity. The receiver is left unchanged.
func (c *Context) Insert(v binder.Var, ty Type) *Context {
	root := c.root
	if root == nil {
		root = &hamtNode{}
	}
	newRoot, added := root.put(hashID(v.Unique), v.Unique, ty, 0)
	count := c.count
	if added {
		count++
	}
	return &Context{root: newRoot, count: count}
}
