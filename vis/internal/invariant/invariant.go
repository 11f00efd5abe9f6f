// Package invariant provides contract assertions used throughout vista-sdk-go.
//
// These panic on violation: they guard programmer misuse of the library
// (a nil Gmod reference, a codebook slot index that cannot exist), never
// malformed input data. Malformed input is reported through ordinary error
// returns and the errctx accumulator instead.
package invariant

import (
	"fmt"
	"reflect"
)

// Precondition panics if condition is false. Use at the top of exported
// constructors and builder methods to reject impossible arguments.
func Precondition(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf("precondition violation: "+format, args...))
	}
}

// Invariant panics if condition is false. Use mid-function to assert a
// structural invariant that must hold for the rest of the function to be
// correct (e.g. a loop that must make progress).
func Invariant(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf("invariant violation: "+format, args...))
	}
}

// NotNil panics if value is nil, including a typed nil pointer, map,
// slice, func or channel passed as an interface.
func NotNil(value any, name string) {
	isNil := value == nil
	if !isNil {
		switch rv := reflect.ValueOf(value); rv.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			isNil = rv.IsNil()
		}
	}
	if isNil {
		panic(fmt.Sprintf("precondition violation: %s must not be nil", name))
	}
}
