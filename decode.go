package airp

import (
	"math"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Decode stores the contents of v in the Go value val points to. It is the
// inverse of FromGo.
//
// Objects decode into structs, using the same json tags FromGo reads, and
// into maps with string keys. A struct field without a matching key is an
// error unless it is tagged omitempty; the ",string" option stores a scalar
// in a string field as its printed text. Null and an undefined v set
// pointers, slices, maps and interfaces to nil. Numbers convert to any
// numeric kind as long as they fit. Other kind combinations fail with an
// error wrapping ErrTypeMismatch.
func (v *Value) Decode(val interface{}) error {
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.Errorf("decode target %T is not a non-nil pointer", val)
	}
	return decode(v, rv.Elem(), false)
}

func mismatch(want string, v *Value) error {
	return errors.Wrapf(ErrTypeMismatch, "want %s, got %s", want, v.Kind())
}

func decode(v *Value, rv reflect.Value, stringify bool) error {
	null := v.Kind() == Null || v.Kind() == Undefined
	switch rv.Kind() {
	case reflect.Ptr:
		if null {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return decode(v, rv.Elem(), stringify)
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return errors.Errorf("invalid decode target %s", rv.Type())
		}
		itf, err := v.Interface()
		if err != nil {
			return err
		}
		if itf == nil {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		rv.Set(reflect.ValueOf(itf))
		return nil
	case reflect.Bool:
		b, ok := v.Bool()
		if !ok {
			return mismatch("Bool", v)
		}
		rv.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, ok := integer(v)
		if !ok || rv.OverflowInt(i) {
			return errors.Wrapf(ErrTypeMismatch, "%s does not fit %s", v, rv.Type())
		}
		rv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, ok := unsigned(v)
		if !ok || rv.OverflowUint(u) {
			return errors.Wrapf(ErrTypeMismatch, "%s does not fit %s", v, rv.Type())
		}
		rv.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		f, ok := v.Float()
		if !ok {
			return mismatch("Number", v)
		}
		if rv.OverflowFloat(f) {
			return errors.Wrapf(ErrTypeMismatch, "%s does not fit %s", v, rv.Type())
		}
		rv.SetFloat(f)
		return nil
	case reflect.String:
		if s, ok := v.Str(); ok {
			rv.SetString(s)
			return nil
		}
		if !stringify {
			return mismatch("String", v)
		}
		switch v.Kind() {
		case Null, Bool, Number:
			rv.SetString(v.String())
			return nil
		default:
			return errors.Wrapf(ErrTypeMismatch, "can not convert %s to string", v.Kind())
		}
	case reflect.Slice:
		if null {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		if v.Kind() != Array {
			return mismatch("Array", v)
		}
		elems := v.Elems()
		s := reflect.MakeSlice(rv.Type(), len(elems), len(elems))
		for i, e := range elems {
			if err := decode(e, s.Index(i), false); err != nil {
				return errors.Wrapf(err, "index %d", i)
			}
		}
		rv.Set(s)
		return nil
	case reflect.Array:
		if v.Kind() != Array {
			return mismatch("Array", v)
		}
		elems := v.Elems()
		if len(elems) > rv.Len() {
			return errors.Wrapf(ErrTypeMismatch, "%d elements do not fit %s", len(elems), rv.Type())
		}
		for i := 0; i < rv.Len(); i++ {
			if i >= len(elems) {
				rv.Index(i).Set(reflect.Zero(rv.Type().Elem()))
				continue
			}
			if err := decode(elems[i], rv.Index(i), false); err != nil {
				return errors.Wrapf(err, "index %d", i)
			}
		}
		return nil
	case reflect.Map:
		if null {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		t := rv.Type()
		if t.Key().Kind() != reflect.String {
			return errors.Errorf("invalid map key type %s", t.Key())
		}
		if v.Kind() != Object {
			return mismatch("Object", v)
		}
		if rv.IsNil() {
			rv.Set(reflect.MakeMapWithSize(t, v.Len()))
		}
		for _, key := range v.Keys() {
			m, _ := v.Member(key)
			e := reflect.New(t.Elem()).Elem()
			if err := decode(m, e, false); err != nil {
				return errors.Wrapf(err, "key %q", key)
			}
			rv.SetMapIndex(reflect.ValueOf(key).Convert(t.Key()), e)
		}
		return nil
	case reflect.Struct:
		if v.Kind() != Object {
			return mismatch("Object", v)
		}
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if r, _ := utf8.DecodeRuneInString(field.Name); !unicode.IsUpper(r) {
				continue
			}
			tags := strings.Split(field.Tag.Get("json"), ",")
			key := tags[0]
			if key == "-" && len(tags) == 1 {
				continue
			}
			if key == "" {
				key = field.Name
			}
			m, ok := v.Member(key)
			if !ok {
				if hasOption(tags[1:], "omitempty") {
					continue
				}
				return errors.Errorf("key %q missing", key)
			}
			if err := decode(m, rv.Field(i), hasOption(tags[1:], "string")); err != nil {
				return errors.Wrapf(err, "key %q", key)
			}
		}
		return nil
	default:
		return errors.Errorf("invalid decode target %s", rv.Type())
	}
}

func hasOption(options []string, name string) bool {
	for _, o := range options {
		if o == name {
			return true
		}
	}
	return false
}

// integer returns v as an int64 if it is a Number without a fractional part.
func integer(v *Value) (int64, bool) {
	if i, ok := v.Int(); ok {
		return i, true
	}
	f, ok := v.Float()
	if !ok || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func unsigned(v *Value) (uint64, bool) {
	if i, ok := v.Int(); ok {
		return uint64(i), i >= 0
	}
	f, ok := v.Float()
	if !ok || f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(f), true
}
