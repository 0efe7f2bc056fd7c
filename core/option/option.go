package option

import (
	"errors"
	"math"
	"strconv"
)

var ErrNoSuchMatchPattern = errors.New("no such match pattern")
var ErrCannotMatchUnsetValue = errors.New("cannot match unset value")
var ErrCannotMatchValue = errors.New("cannot match value")

type MaybeOption int

const (
	None MaybeOption = iota
	Some
	Error
)

// Maybe is a type used for matching of optional types.
// It will match `Some` if a value is set, `None` if it is unset, or `Error`
// if an error occurs.
type Maybe map[MaybeOption]interface{}

// Of is a type used for matching of optional types.
// It will first try to match concrete values, and in case of no match will
// then try a Maybe match.
type Of map[interface{}]interface{}

// Type is a type for optional values.
type Type interface {
	Match(choices interface{}) (interface{}, error)
	Equals(other interface{}) bool
	IsNone() bool
}

// Match will do a standard matching of o against choices.
// It may be used to create a new type of interface OptionT.
//
// choices are expected to be a map type, where keys of the map are either
// concrete values for o, or of type MaybeOption. Values of the map may be
// of any type.
//
// If choices is of unknown kind, nil and ErrNoSuchMatchPattern are returned.
//
func Match(o Type, choices interface{}) (value interface{}, err error) {
	switch c := choices.(type) {
	case Of:
		return c.Match(o)
	case Maybe:
		return c.Match(o)
	}
	return nil, ErrNoSuchMatchPattern
}

func (of Of) Match(o Type) (value interface{}, err error) {
	Tracer().Debugf("Match(Type=%T) for %T", of, o)
	if o.IsNone() {
		if expr, ok := of[None]; ok {
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
	} else {
		err = ErrCannotMatchValue
		matched := false
		for k, expr := range of {
			if o.Equals(k) {
				matched = true
				value, err = valueOrExpr(expr, o, Some)
			}
		}
		if !matched {
			if expr, ok := of[Some]; ok {
				value, err = valueOrExpr(expr, o, Some)
			}
		}
		if err != nil {
			Tracer().Errorf(err.Error())
			if expr, ok := of[Error]; ok {
				value, err = valueOrExpr(expr, o, Error)
			}
		}
	}
	return value, err
}

func (maybe Maybe) Match(o Type) (value interface{}, err error) {
	Tracer().Debugf("Match(Type=%T) for %T", maybe, o)
	if o.IsNone() {
		if expr, ok := maybe[None]; ok {
			value, err = valueOrExpr(expr, o, None)
		} else {
			err = ErrCannotMatchUnsetValue
		}
	} else {
		if expr, ok := maybe[Some]; ok {
			value, err = valueOrExpr(expr, o, Some)
		}
		if err != nil {
			Tracer().Errorf(err.Error())
			if expr, ok := maybe[Error]; ok {
				value, err = valueOrExpr(expr, o, Error)
			}
		}
	}
	return value, err
}

func valueOrExpr(op interface{}, value Type, t MaybeOption) (interface{}, error) {
	switch x := op.(type) {
	case func(interface{}, MaybeOption) (interface{}, error):
		return x(value, t)
	case func(interface{}) (interface{}, error):
		return x(value)
	}
	return op, nil
}

// Fail may be used as an option case, causing a Match to fail with an error.
// The error will be returned by Match(…), unless caught with an option.Error
// label.
//
//     _, err := o.Match(option.Of{
//          option.None: …,
//          99:          option.Fail(errors.New("99 is illegal")),
//          option.Some: …,
//     })
//
func Fail(err error) func(interface{}) (interface{}, error) {
	localErr := err
	return func(interface{}) (interface{}, error) {
		return nil, localErr
	}
}

// Safe wraps a Match's return values and drops the error value.
func Safe(x interface{}, err error) interface{} {
	return x
}

// --- Float64T ----------------------------------------------------------------

// Float64T is an option type for float64.
type Float64T float64

// Float64None is used as an in-band null value for type float64 for optional
// floats.
var Float64None = math.MaxFloat64

// SomeFloat64 creates an optional float64 with an initial value of x.
func SomeFloat64(x float64) Float64T {
	return Float64T(x)
}

// Float64 creates an optional float64 without an initial value.
func Float64() Float64T {
	return Float64T(Float64None)
}

func (o Float64T) Match(choices interface{}) (value interface{}, err error) {
	return Match(o, choices)
}

func (o Float64T) Equals(other interface{}) bool {
	switch f := other.(type) {
	case float64:
		return float64(o) == f
	case float32:
		return float64(o) == float64(f)
	case int:
		return float64(o) == float64(f)
	}
	return false
}

func (o Float64T) Unwrap() float64 {
	return float64(o)
}

// UnwrapOr returns the value of o, or deflt if o is unset.
func (o Float64T) UnwrapOr(deflt float64) float64 {
	if o.IsNone() {
		return deflt
	}
	return float64(o)
}

// IsNone returns true if o is unset.
func (o Float64T) IsNone() bool {
	return float64(o) == Float64None
}

func (o Float64T) String() string {
	if o.IsNone() {
		return "Float64.None"
	}
	return strconv.FormatFloat(float64(o), 'f', -1, 64)
}

var _ Type = Float64T(0)
