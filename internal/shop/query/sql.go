package query

import (
	"fmt"
	"strings"
)

// Scope selects which entity a predicate is compiled against.
type Scope int

const (
	ProductScope Scope = iota
	ItemScope
)

// Compile renders a predicate tree into a SQL condition and its arguments.
// An empty tree compiles to an empty condition, meaning no WHERE clause.
// Product-scoped queries are expected to join brand; item-scoped queries
// join product and brand.
func Compile(n Node, scope Scope) (string, []interface{}, error) {
	switch t := n.(type) {
	case Leaf:
		return compileLeaf(t, scope)
	case And:
		return compileGroup(t.Children, " AND ", scope)
	case Or:
		return compileGroup(t.Children, " OR ", scope)
	}
	return "", nil, fmt.Errorf("unknown predicate node %T", n)
}

func compileGroup(children []Node, sep string, scope Scope) (string, []interface{}, error) {
	var (
		parts []string
		args  []interface{}
	)
	for _, c := range children {
		sql, childArgs, err := Compile(c, scope)
		if err != nil {
			return "", nil, err
		}
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		args = append(args, childArgs...)
	}
	switch len(parts) {
	case 0:
		return "", nil, nil
	case 1:
		return parts[0], args, nil
	}
	return "(" + strings.Join(parts, sep) + ")", args, nil
}

func compileLeaf(l Leaf, scope Scope) (string, []interface{}, error) {
	column, err := columnFor(l.Field, scope)
	if err != nil {
		return "", nil, err
	}
	switch l.Op {
	case OpEq:
		return column + " = ?", []interface{}{l.Value}, nil
	case OpIEq:
		return "LOWER(" + column + ") = LOWER(?)", []interface{}{l.Value}, nil
	case OpIsNull:
		isNull, ok := l.Value.(bool)
		if !ok {
			return "", nil, fmt.Errorf("field %s: isnull needs a bool value", l.Field)
		}
		if isNull {
			return column + " IS NULL", nil, nil
		}
		return column + " IS NOT NULL", nil, nil
	case OpOnDate:
		return column + "::date = ?", []interface{}{l.Value}, nil
	case OpSince:
		return column + " >= ?", []interface{}{l.Value}, nil
	}
	return "", nil, fmt.Errorf("field %s: unknown operator %q", l.Field, l.Op)
}

func columnFor(field string, scope Scope) (string, error) {
	if scope == ItemScope {
		if rest, ok := strings.CutPrefix(field, "product."); ok {
			return columnFor(rest, ProductScope)
		}
		switch field {
		case "sold_date":
			return "item.sold_date", nil
		case "selling_price":
			return "item.selling_price", nil
		}
		return "", fmt.Errorf("unknown item field %q", field)
	}

	switch field {
	case "category":
		return "product.category_id", nil
	case "brand":
		return "product.brand_id", nil
	case "name":
		return "product.name", nil
	case "brand.name":
		return "brand.name", nil
	case "product_code":
		return "product.product_code", nil
	}
	return "", fmt.Errorf("unknown product field %q", field)
}
