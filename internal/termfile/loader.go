// Package termfile decodes structured YAML term descriptions into typed
// expressions. It is a data format, not a surface syntax: documents mirror
// the AST node for node, and name resolution is the only work done on top
// of decoding.
package termfile

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/moniker/internal/binder"
	"github.com/funvibe/moniker/internal/typed"
)

// node is the YAML shape of a term. Exactly one field must be set. Lit is a
// value field because yaml.v3 only decodes scalars into yaml.Node values,
// not pointers; presence is checked with IsZero.
type node struct {
	Var *string   `yaml:"var"`
	Lit yaml.Node `yaml:"lit"`
	Lam *lamNode  `yaml:"lam"`
	App *appNode  `yaml:"app"`
	Ann *annNode  `yaml:"ann"`
}

type lamNode struct {
	Param string    `yaml:"param"`
	Ann   *typeNode `yaml:"ann"`
	Body  *node     `yaml:"body"`
}

type appNode struct {
	Fun *node `yaml:"fun"`
	Arg *node `yaml:"arg"`
}

type annNode struct {
	Expr *node     `yaml:"expr"`
	Type *typeNode `yaml:"type"`
}

// typeNode is either a scalar type name or an arrow mapping.
type typeNode struct {
	name  string
	arrow *arrowNode
}

type arrowNode struct {
	From typeNode `yaml:"from"`
	To   typeNode `yaml:"to"`
}

func (t *typeNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		t.name = value.Value
		return nil
	}
	var aux struct {
		Arrow *arrowNode `yaml:"arrow"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	if aux.Arrow == nil {
		return fmt.Errorf("line %d: type must be a name or an arrow mapping", value.Line)
	}
	t.arrow = aux.Arrow
	return nil
}

func (t *typeNode) toType() (typed.Type, error) {
	if t.arrow != nil {
		from, err := t.arrow.From.toType()
		if err != nil {
			return nil, err
		}
		to, err := t.arrow.To.toType()
		if err != nil {
			return nil, err
		}
		return typed.NewArrow(from, to), nil
	}
	switch strings.ToLower(t.name) {
	case "int":
		return typed.Int, nil
	case "float":
		return typed.Float, nil
	case "string":
		return typed.String, nil
	}
	return nil, fmt.Errorf("unknown type %q", t.name)
}

// Load decodes a YAML document into a typed expression. A name bound by an
// enclosing lam resolves to the innermost such binder; any other name
// becomes a free variable, shared across the whole document so that open
// terms like `x y` keep a single identity per display name.
func Load(data []byte) (typed.Expr, error) {
	var root node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("term file: %w", err)
	}
	l := &loader{free: make(map[string]binder.Var)}
	return l.build(&root, nil)
}

type loader struct {
	free map[string]binder.Var
}

// scopeEnv is the lexical chain of binders in force, innermost first.
type scopeEnv struct {
	name  string
	v     binder.Var
	outer *scopeEnv
}

func (s *scopeEnv) lookup(name string) (binder.Var, bool) {
	for e := s; e != nil; e = e.outer {
		if e.name == name {
			return e.v, true
		}
	}
	return binder.Var{}, false
}

func (l *loader) build(n *node, env *scopeEnv) (typed.Expr, error) {
	if n == nil {
		return nil, fmt.Errorf("missing term")
	}
	if err := n.checkSingle(); err != nil {
		return nil, err
	}

	switch {
	case n.Var != nil:
		name := *n.Var
		if name == "" {
			return nil, fmt.Errorf("var: missing name")
		}
		if v, ok := env.lookup(name); ok {
			return typed.NewVar(v), nil
		}
		v, ok := l.free[name]
		if !ok {
			v = binder.FreshVar(name)
			l.free[name] = v
		}
		return typed.NewVar(v), nil

	case !n.Lit.IsZero():
		lit, err := decodeLiteral(&n.Lit)
		if err != nil {
			return nil, err
		}
		return typed.NewLit(lit), nil

	case n.Lam != nil:
		if n.Lam.Param == "" {
			return nil, fmt.Errorf("lam: missing param")
		}
		var ann typed.Type
		if n.Lam.Ann != nil {
			var err error
			ann, err = n.Lam.Ann.toType()
			if err != nil {
				return nil, fmt.Errorf("lam %s: %w", n.Lam.Param, err)
			}
		}
		b := binder.NewBinder(n.Lam.Param)
		body, err := l.build(n.Lam.Body, &scopeEnv{name: n.Lam.Param, v: b.Occurrence(), outer: env})
		if err != nil {
			return nil, err
		}
		embed := binder.Embed{}
		if ann != nil {
			embed = binder.Embed{Payload: ann}
		}
		return &typed.Lam{Scope: binder.NewScopeWith(b, embed, body)}, nil

	case n.App != nil:
		fun, err := l.build(n.App.Fun, env)
		if err != nil {
			return nil, fmt.Errorf("app fun: %w", err)
		}
		arg, err := l.build(n.App.Arg, env)
		if err != nil {
			return nil, fmt.Errorf("app arg: %w", err)
		}
		return typed.NewApp(fun, arg), nil

	case n.Ann != nil:
		expr, err := l.build(n.Ann.Expr, env)
		if err != nil {
			return nil, err
		}
		if n.Ann.Type == nil {
			return nil, fmt.Errorf("ann: missing type")
		}
		ty, err := n.Ann.Type.toType()
		if err != nil {
			return nil, err
		}
		return typed.NewAnn(expr, ty), nil
	}

	return nil, fmt.Errorf("term must set one of var, lit, lam, app, ann")
}

func (n *node) checkSingle() error {
	count := 0
	if n.Var != nil {
		count++
	}
	if !n.Lit.IsZero() {
		count++
	}
	if n.Lam != nil {
		count++
	}
	if n.App != nil {
		count++
	}
	if n.Ann != nil {
		count++
	}
	if count > 1 {
		return fmt.Errorf("term sets %d of var, lit, lam, app, ann; want exactly one", count)
	}
	return nil
}

func decodeLiteral(v *yaml.Node) (typed.Literal, error) {
	if v.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: lit must be a scalar", v.Line)
	}
	switch v.Tag {
	case "!!int":
		i, err := strconv.ParseInt(v.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad int literal %q", v.Line, v.Value)
		}
		return typed.IntLit{Value: i}, nil
	case "!!float":
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad float literal %q", v.Line, v.Value)
		}
		return typed.FloatLit{Value: f}, nil
	case "!!str":
		return typed.StringLit{Value: v.Value}, nil
	}
	return nil, fmt.Errorf("line %d: unsupported literal %s", v.Line, v.Tag)
}
