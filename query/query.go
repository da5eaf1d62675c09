// Package query evaluates JMESPath expressions against decoded JSON trees.
package query

import (
	"fmt"
	"math"
	"sort"

	"github.com/jmespath/go-jmespath"

	"github.com/typedjson/typedjson/jsontree"
)

// Expression is a compiled JMESPath expression.
type Expression struct {
	jp *jmespath.JMESPath
}

// Compile parses a JMESPath expression for repeated evaluation.
func Compile(expr string) (*Expression, error) {
	jp, err := jmespath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile JMESPath expression %q: %w", expr, err)
	}
	return &Expression{jp: jp}, nil
}

// Search evaluates the expression against v and returns the matched value,
// or jsontree.Null if nothing matched. Object member order is not preserved
// through evaluation; result objects have sorted keys.
func (e *Expression) Search(v jsontree.Value) (jsontree.Value, error) {
	out, err := e.jp.Search(toPlain(v))
	if err != nil {
		return nil, fmt.Errorf("evaluate JMESPath expression: %w", err)
	}
	return fromPlain(out)
}

// Search compiles and evaluates expr against v in one step.
func Search(expr string, v jsontree.Value) (jsontree.Value, error) {
	e, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return e.Search(v)
}

// toPlain converts a tree to the map/slice/scalar representation jmespath
// evaluates over.
func toPlain(v jsontree.Value) any {
	switch t := v.(type) {
	case jsontree.Null:
		return nil
	case jsontree.Bool:
		return bool(t)
	case jsontree.Number:
		f, err := t.Float64()
		if err != nil {
			return string(t)
		}
		return f
	case jsontree.String:
		return string(t)
	case jsontree.Array:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = toPlain(e)
		}
		return out
	case jsontree.Object:
		out := make(map[string]any, t.Len())
		for key, val := range t.Pairs() {
			out[key] = toPlain(val)
		}
		return out
	default:
		return nil
	}
}

func fromPlain(v any) (jsontree.Value, error) {
	switch t := v.(type) {
	case nil:
		return jsontree.Null{}, nil
	case bool:
		return jsontree.Bool(t), nil
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return nil, fmt.Errorf("expression produced non-finite number %v", t)
		}
		return jsontree.Float(t), nil
	case int:
		return jsontree.Int(int64(t)), nil
	case string:
		return jsontree.String(t), nil
	case []any:
		arr := make(jsontree.Array, len(t))
		for i, e := range t {
			v, err := fromPlain(e)
			if err != nil {
				return nil, err
			}
			arr[i] = v
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		obj := jsontree.NewObject()
		for _, k := range keys {
			v, err := fromPlain(t[k])
			if err != nil {
				return nil, err
			}
			obj.Set(k, v)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("expression produced unsupported type %T", v)
	}
}
