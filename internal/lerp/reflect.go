package lerp

import "reflect"

var float64Type = reflect.TypeOf(float64(0))

// Any blends a and b by structural recursion. A Lerpify method with the
// Lerpable shape takes precedence at every level, including the top.
func Any[T any](a, b T, pct float64) T {
	return fromValue[T](blend(valueOf(&a), valueOf(&b), pct, true))
}

// Structural is Any without the method check on T itself. Types use it to
// implement Lerpify in terms of their fields.
func Structural[T any](a, b T, pct float64) T {
	return fromValue[T](blend(valueOf(&a), valueOf(&b), pct, false))
}

func valueOf[T any](p *T) reflect.Value { return reflect.ValueOf(p).Elem() }

func fromValue[T any](v reflect.Value) T {
	out := new(T)
	reflect.ValueOf(out).Elem().Set(v)
	return *out
}

// lerpMethod finds a value-receiver Lerpify(T, float64) T on t.
func lerpMethod(t reflect.Type) (reflect.Method, bool) {
	if t.Kind() == reflect.Interface {
		return reflect.Method{}, false
	}
	m, ok := t.MethodByName("Lerpify")
	if !ok {
		return m, false
	}
	mt := m.Type
	if mt.NumIn() != 3 || mt.NumOut() != 1 || mt.In(1) != t || mt.In(2) != float64Type || mt.Out(0) != t {
		return m, false
	}
	return m, true
}

func step(a, b reflect.Value, pct float64) reflect.Value {
	if pct > 0.5 {
		return b
	}
	return a
}

func blend(a, b reflect.Value, pct float64, useMethod bool) reflect.Value {
	t := a.Type()
	if useMethod {
		if m, ok := lerpMethod(t); ok {
			return m.Func.Call([]reflect.Value{a, b, reflect.ValueOf(pct)})[0]
		}
	}

	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		out.SetFloat(Float64(a.Float(), b.Float(), pct))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		out.SetInt(int64(Float64(float64(a.Int()), float64(b.Int()), pct)))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f := Float64(float64(a.Uint()), float64(b.Uint()), pct)
		if f < 0 {
			f = 0
		}
		out.SetUint(uint64(f))
	case reflect.Struct:
		out.Set(step(a, b, pct))
		for i := range t.NumField() {
			if !t.Field(i).IsExported() {
				continue
			}
			out.Field(i).Set(blend(a.Field(i), b.Field(i), pct, true))
		}
	case reflect.Array:
		for i := range t.Len() {
			out.Index(i).Set(blend(a.Index(i), b.Index(i), pct, true))
		}
	case reflect.Slice:
		return blendSlice(a, b, pct)
	case reflect.Pointer:
		if a.IsNil() || b.IsNil() {
			return step(a, b, pct)
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(blend(a.Elem(), b.Elem(), pct, true))
		return p
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return step(a, b, pct)
		}
		ea, eb := a.Elem(), b.Elem()
		if ea.Type() != eb.Type() {
			return step(a, b, pct)
		}
		out.Set(blend(ea, eb, pct, true))
	default:
		// bool, string, map, func, chan, complex
		return step(a, b, pct)
	}
	return out
}

func blendSlice(a, b reflect.Value, pct float64) reflect.Value {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return a
	}
	count := la
	if la != lb {
		count = Count(la, lb, pct)
	}
	out := reflect.MakeSlice(a.Type(), count, count)
	for i := range count {
		switch {
		case i < la && i < lb:
			out.Index(i).Set(blend(a.Index(i), b.Index(i), pct, true))
		case i < la:
			out.Index(i).Set(a.Index(i))
		default:
			out.Index(i).Set(b.Index(i))
		}
	}
	return out
}
