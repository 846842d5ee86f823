package musehash

import "reflect"

// WriteComparable adds v to h so that equal values (under ==) always produce
// equal digests.
//
// Strings become a byte run and numbers, booleans and complex values go to
// the numeric buffer. Arrays and structs are written element by element,
// pointers and channels by address, and interfaces by their dynamic value.
// Floating-point zero is written as +0 so that -0 and +0 agree.
func WriteComparable[T comparable](h *Hasher, v T) {
	switch x := any(v).(type) {
	case string:
		h.WriteString(x)
	case int:
		h.WriteInt(x)
	case int8:
		h.WriteInt8(x)
	case int16:
		h.WriteInt16(x)
	case int32:
		h.WriteInt32(x)
	case int64:
		h.WriteInt64(x)
	case uint:
		h.WriteUint(x)
	case uint8:
		h.WriteUint8(x)
	case uint16:
		h.WriteUint16(x)
	case uint32:
		h.WriteUint32(x)
	case uint64:
		h.WriteUint64(x)
	case uintptr:
		h.WriteUintptr(x)
	case bool:
		h.WriteBool(x)
	case float32:
		writeFloat32(h, x)
	case float64:
		writeFloat64(h, x)
	default:
		writeValue(h, reflect.ValueOf(v))
	}
}

func writeFloat32(h *Hasher, f float32) {
	if f == 0 {
		f = 0
	}
	h.WriteFloat32(f)
}

func writeFloat64(h *Hasher, f float64) {
	if f == 0 {
		f = 0
	}
	h.WriteFloat64(f)
}

func writeValue(h *Hasher, v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		h.WriteString(v.String())
	case reflect.Bool:
		h.WriteBool(v.Bool())
	case reflect.Int:
		h.WriteInt(int(v.Int()))
	case reflect.Int8:
		h.WriteInt8(int8(v.Int()))
	case reflect.Int16:
		h.WriteInt16(int16(v.Int()))
	case reflect.Int32:
		h.WriteInt32(int32(v.Int()))
	case reflect.Int64:
		h.WriteInt64(v.Int())
	case reflect.Uint:
		h.WriteUint(uint(v.Uint()))
	case reflect.Uint8:
		h.WriteUint8(uint8(v.Uint()))
	case reflect.Uint16:
		h.WriteUint16(uint16(v.Uint()))
	case reflect.Uint32:
		h.WriteUint32(uint32(v.Uint()))
	case reflect.Uint64:
		h.WriteUint64(v.Uint())
	case reflect.Uintptr:
		h.WriteUintptr(uintptr(v.Uint()))
	case reflect.Float32:
		writeFloat32(h, float32(v.Float()))
	case reflect.Float64:
		writeFloat64(h, v.Float())
	case reflect.Complex64:
		c := v.Complex()
		writeFloat32(h, float32(real(c)))
		writeFloat32(h, float32(imag(c)))
	case reflect.Complex128:
		c := v.Complex()
		writeFloat64(h, real(c))
		writeFloat64(h, imag(c))
	case reflect.Array:
		for i := range v.Len() {
			writeValue(h, v.Index(i))
		}
	case reflect.Struct:
		for i := range v.NumField() {
			writeValue(h, v.Field(i))
		}
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan:
		h.WriteUintptr(v.Pointer())
	case reflect.Interface:
		if v.IsNil() {
			h.WriteUint8(0)
			return
		}
		h.WriteUint8(1)
		writeValue(h, v.Elem())
	case reflect.Invalid:
		// nil interface passed as T
		h.WriteUint8(0)
	}
}
