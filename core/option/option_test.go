package option_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/hershey/core/option"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestOptionMaybe(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var y1, y2 interface{}
	x := option.SomeFloat64(42)
	t.Logf("x = %v, x.T = %T, x.unwrap = %v", x, x, x.Unwrap())
	y1, _ = x.Match(option.Maybe{
		option.None: 7,
		option.Some: x.Unwrap() + 1,
	})
	//
	x = option.Float64()
	y2, _ = x.Match(option.Maybe{
		option.None: "No Value",
		option.Some: stringify,
	})
	//
	if y1 != 43.0 {
		t.Errorf("expected y1 to be 43, is %v", y1)
	}
	if y2 != "No Value" {
		t.Errorf("expected y2 to be 'No Value', is %v", y2)
	}
}

func TestOptionOf(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	x := option.SomeFloat64(0)
	_, err := x.Match(option.Of{
		option.None: 1.0,
		0:           option.Fail(errors.New("scale of 0 is illegal")),
		option.Some: stringify,
	})
	if err == nil {
		t.Errorf("expected match of 0 to fail, did not")
	}
}

func TestOptionUnwrapOr(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if option.Float64().UnwrapOr(1) != 1 {
		t.Errorf("expected unset option to unwrap to default 1")
	}
	if option.SomeFloat64(2.5).UnwrapOr(1) != 2.5 {
		t.Errorf("expected set option to unwrap to 2.5")
	}
}

func stringify(x interface{}) (interface{}, error) {
	return fmt.Sprintf("%v", x), nil
}
