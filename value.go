package argh

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by Value.Scan when the lookup that produced the
// Value missed.
var ErrNotFound = errors.New("not found")

var errEmptyValue = errors.New("empty value")

// Marshaler is implemented by destination types that convert a raw argument
// string themselves, overriding the fmt.Sscan fallback.
type Marshaler interface {
	Marshal(in string) error
}

// Value is the result of a positional or parameter lookup. The zero Value
// is a miss.
type Value struct {
	raw string
	ok  bool
	err error
}

func missValue(what string) Value {
	return Value{err: errors.Wrap(ErrNotFound, what)}
}

func okValue(raw string) Value {
	return Value{raw: raw, ok: true}
}

// OK reports whether the lookup hit. A present parameter with an empty
// value string is a hit; converting it will still fail.
func (v Value) OK() bool {
	return v.ok
}

// Str returns the raw value string, or "" on a miss.
func (v Value) Str() string {
	return v.raw
}

// Err returns why the lookup missed, or nil on a hit.
func (v Value) Err() error {
	return v.err
}

// Scan converts the raw value into dst, which must be a non-nil pointer or
// a Marshaler. On any failure dst is left unchanged: the conversion happens
// into a scratch value that is only assigned on success. An empty raw value
// fails like a malformed one.
func (v Value) Scan(dst interface{}) error {
	if !v.ok {
		return v.err
	}
	if v.raw == "" {
		return errEmptyValue
	}
	if m, ok := dst.(Marshaler); ok {
		return m.Marshal(v.raw)
	}
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.Errorf("scan destination must be a non-nil pointer, got %T", dst)
	}
	scratch := reflect.New(rv.Type().Elem())
	if _, err := fmt.Sscan(v.raw, scratch.Interface()); err != nil {
		return errors.Wrapf(err, "converting %q", v.raw)
	}
	rv.Elem().Set(scratch.Elem())
	return nil
}
