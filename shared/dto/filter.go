package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorIn        = "in"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterOperatorBetween   = "between"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// matchNothing keeps an empty IN list valid SQL.
const matchNothing = "FALSE"

// Bounds is the value of a between filter. Both ends are inclusive.
type Bounds struct {
	From any
	To   any
}

// Filter is one named-parameter predicate. ArgName defaults to Field and must
// be unique within a query.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq not_eq in less_eq greater_eq between"`
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return fmt.Sprintf("%s.%s", f.Table, f.Field)
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column := f.column()
	argName := f.argName()

	switch f.Operator {
	case FilterOperatorEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s = :%s", column, argName), args
	case FilterOperatorNotEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s != :%s", column, argName), args
	case FilterOperatorLessEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s <= :%s", column, argName), args
	case FilterOperatorGreaterEq:
		args[argName] = f.Value

		return fmt.Sprintf("%s >= :%s", column, argName), args
	case FilterOperatorBetween:
		bounds, ok := f.Value.(Bounds)
		if !ok {
			return "", args
		}

		args[argName+"_from"] = bounds.From
		args[argName+"_to"] = bounds.To

		return fmt.Sprintf("%s BETWEEN :%s_from AND :%s_to", column, argName, argName), args
	case FilterOperatorIn:
		return f.inClause(column, argName, args)
	default:
		return "", args
	}
}

func (f *Filter) inClause(column, argName string, args map[string]any) (string, map[string]any) {
	val := reflect.ValueOf(f.Value)
	if !val.IsValid() {
		return matchNothing, args
	}

	if kind := val.Kind(); kind != reflect.Array && kind != reflect.Slice {
		args[argName] = f.Value

		return fmt.Sprintf("%s IN (:%s)", column, argName), args
	}

	if val.Len() == 0 {
		return matchNothing, args
	}

	named := make([]string, val.Len())

	for idx := range val.Len() {
		name := fmt.Sprintf("%s_%d", argName, idx)
		args[name] = val.Index(idx).Interface()
		named[idx] = ":" + name
	}

	return fmt.Sprintf("%s IN (%s)", column, strings.Join(named, ", ")), args
}

// FilterGroup joins filters and nested groups with Operator, AND when unset.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	whereClause := []string{}

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		whereClause = append(whereClause, where)

		maps.Copy(args, arg)
	}

	if len(whereClause) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return fmt.Sprintf("(%s)", strings.Join(whereClause, " "+operator+" ")), args
}
