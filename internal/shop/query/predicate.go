// Package query builds, rewrites and compiles the boolean filter predicates
// shared by the product listing, report and analytics views.
package query

// Op is a leaf comparison operator.
type Op string

const (
	// OpEq matches a column exactly.
	OpEq Op = "eq"
	// OpIEq matches a column case-insensitively.
	OpIEq Op = "ieq"
	// OpIsNull tests a column for NULL (value is a bool).
	OpIsNull Op = "isnull"
	// OpOnDate matches a timestamp column on a calendar date.
	OpOnDate Op = "on_date"
	// OpSince matches a timestamp column at or after an instant.
	OpSince Op = "since"
)

// Node is a predicate tree: a Leaf comparison or a conjunction/disjunction
// of child nodes. An empty And or Or matches everything.
type Node interface {
	node()
}

type Leaf struct {
	Field string
	Op    Op
	Value interface{}
}

type And struct {
	Children []Node
}

type Or struct {
	Children []Node
}

func (Leaf) node() {}
func (And) node()  {}
func (Or) node()   {}

// MapLeaves rebuilds the tree with fn applied to every leaf, preserving
// conjunction/disjunction structure. Leafless trees come back unchanged.
func MapLeaves(n Node, fn func(Leaf) Leaf) Node {
	switch t := n.(type) {
	case Leaf:
		return fn(t)
	case And:
		return And{Children: mapChildren(t.Children, fn)}
	case Or:
		return Or{Children: mapChildren(t.Children, fn)}
	}
	return n
}

func mapChildren(children []Node, fn func(Leaf) Leaf) []Node {
	out := make([]Node, len(children))
	for i, c := range children {
		out[i] = MapLeaves(c, fn)
	}
	return out
}

// Project rewrites a predicate built against one entity so it applies to a
// related entity, by prefixing every leaf field with the relation path.
func Project(relation string, n Node) Node {
	return MapLeaves(n, func(l Leaf) Leaf {
		l.Field = relation + "." + l.Field
		return l
	})
}

// ForItems projects a product-scoped predicate onto item queries.
func ForItems(n Node) Node {
	return Project("product", n)
}
