package result_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/npillmayer/algebra/either"
	"github.com/npillmayer/algebra/maybe"

	. "github.com/npillmayer/algebra/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultMapping(t *testing.T) {
	r := Map(strconv.Itoa, Ok(7))
	if r.WithDefault("") != "7" {
		t.Errorf("expected Ok(7) mapped to string to be \"7\", is %v", r)
	}
	failed := Map(strconv.Itoa, Err[int](errors.New("boom")))
	if failed.IsOk() || failed.WithDefault("none") != "none" {
		t.Errorf("expected mapping an Err to stay an Err, is %v", failed)
	}
	wrapped := MapError(func(err error) error {
		return fmt.Errorf("context: %w", err)
	}, Err[int](errNotOk))
	var e error
	switch m := wrapped.Match(); m {
	case m.Err(&e):
	}
	if !errors.Is(e, errNotOk) || e.Error() != "context: not ok" {
		t.Errorf("expected wrapped error, have %v", e)
	}
}

func TestResultAndThen(t *testing.T) {
	parse := func(s string) Result[int] {
		n, err := strconv.Atoi(s)
		return Try(n, err)
	}
	if v := AndThen(parse, Ok("42")).WithDefault(0); v != 42 {
		t.Errorf("expected 42, have %d", v)
	}
	if AndThen(parse, Ok("x")).IsOk() {
		t.Error("expected parsing x to fail, didn't")
	}
	if AndThen(parse, Err[string](errNotOk)).IsOk() {
		t.Error("expected Err to short-circuit, didn't")
	}
}

func TestResultMaybeConversion(t *testing.T) {
	if !ToMaybe(Ok(1)).Equals(maybe.Just(1)) {
		t.Error("expected Ok(1) to convert to Just(1)")
	}
	if !ToMaybe(Err[int](errNotOk)).IsNothing() {
		t.Error("expected Err to convert to Nothing")
	}
	if FromMaybe(errNotOk, maybe.Nothing[int]()).IsOk() {
		t.Error("expected Nothing to convert to Err")
	}
	if FromMaybe(errNotOk, maybe.Just(3)).WithDefault(0) != 3 {
		t.Error("expected Just(3) to convert to Ok(3)")
	}
}

func TestResultJSON(t *testing.T) {
	data, err := json.Marshal(Err[int](errNotOk))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"#type":"algebra:Either.Left","value":"not ok"}` {
		t.Errorf("unexpected JSON %s", data)
	}
	data, _ = json.Marshal(Ok(5))
	if string(data) != `{"#type":"algebra:Either.Right","value":5}` {
		t.Errorf("unexpected JSON %s", data)
	}
}

func TestResultNilError(t *testing.T) {
	r := Err[int](nil)
	if !r.IsOk() {
		t.Errorf("expected Err(nil) to be Ok, is %v", r)
	}
	var v int
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
	case m.Err(&e):
		t.Error("expected Err(nil) to match Ok, matched Err")
	}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"#type":"algebra:Either.Right","value":0}` {
		t.Errorf("unexpected JSON %s", data)
	}
	wrapped := FromEither(either.Left[error, int](nil))
	data, err = json.Marshal(wrapped)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"#type":"algebra:Either.Left","value":null}` {
		t.Errorf("unexpected JSON %s", data)
	}
}

var errNotOk = errors.New("not ok")
