package query

import (
	"fmt"
	"net/url"
	"strconv"
)

// Filter parameters shared by all shop views.
const (
	ParamCategoryID     = "category__id"
	ParamCategoryIsNull = "category__isnull"
	ParamBrandID        = "brand__id"
	ParamSearch         = "search"
)

// FromParams builds the product filter from request query parameters.
// Each recognized parameter contributes one conjunct; no parameters means a
// match-all predicate. Numeric parameters are untrusted and validated here.
func FromParams(params url.Values) (Node, error) {
	var children []Node

	if params.Has(ParamCategoryID) {
		id, err := parseInt(ParamCategoryID, params.Get(ParamCategoryID))
		if err != nil {
			return nil, err
		}
		children = append(children, Leaf{Field: "category", Op: OpEq, Value: id})
	}

	if params.Has(ParamCategoryIsNull) {
		flag, err := parseInt(ParamCategoryIsNull, params.Get(ParamCategoryIsNull))
		if err != nil {
			return nil, err
		}
		children = append(children, Leaf{Field: "category", Op: OpIsNull, Value: flag != 0})
	}

	if params.Has(ParamBrandID) {
		id, err := parseInt(ParamBrandID, params.Get(ParamBrandID))
		if err != nil {
			return nil, err
		}
		children = append(children, Leaf{Field: "brand", Op: OpEq, Value: id})
	}

	if params.Has(ParamSearch) {
		search := params.Get(ParamSearch)
		children = append(children, Or{Children: []Node{
			Leaf{Field: "name", Op: OpIEq, Value: search},
			Leaf{Field: "brand.name", Op: OpIEq, Value: search},
			Leaf{Field: "product_code", Op: OpEq, Value: search},
		}})
	}

	return And{Children: children}, nil
}

func parseInt(param, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parameter %s: invalid integer %q", param, raw)
	}
	return v, nil
}
