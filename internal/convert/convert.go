package convert

import (
	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// Unsigned is the set of types [To] converts to.
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// To converts v to the unsigned type T.
func To[T Unsigned](v any) (T, error) {
	if isIntVal(v) {
		return safemath.ConvertAny[T](v)
	}

	return cast.ToE[T](v)
}

// Uint64 is shorthand for To[uint64].
func Uint64(v any) (uint64, error) { return To[uint64](v) }

// isIntVal reports whether v's dynamic type is one of the integer types
// eligible for safemath conversions.
func isIntVal(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	default:
		return false
	}
}
