package airp

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Kind is an enum for the kinds of values.
type Kind uint8

// Kinds to compare values of a tree with. The zero value is the kind of a
// nil *Value, which is what parsing an empty buffer yields.
const (
	Undefined Kind = iota
	Null
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Undefined:
		return "Undefined"
	case Null:
		return "Null"
	case Bool:
		return "Bool"
	case Number:
		return "Number"
	case String:
		return "String"
	case Array:
		return "Array"
	case Object:
		return "Object"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ErrNotArrayOrObject is returned by lookups that need a container.
var ErrNotArrayOrObject = errors.New("not array or object")

// Value is one node of a tree.
// Depending on its kind it holds a different payload:
//     Kind	Payload
//     Null	nil
//     Bool	bool
//     Number	int64 or float64
//     String	string
//     Array	[]*Value
//     Object	map[string]*Value
type Value struct {
	kind  Kind
	value interface{}
}

// NewNull returns a null value.
func NewNull() *Value { return &Value{kind: Null} }

// NewBool returns a boolean value.
func NewBool(b bool) *Value { return &Value{kind: Bool, value: b} }

// NewInt returns an integer number.
func NewInt(i int64) *Value { return &Value{kind: Number, value: i} }

// NewFloat returns a floating point number.
func NewFloat(f float64) *Value { return &Value{kind: Number, value: f} }

// NewString returns a string value. s is kept verbatim, escapes included.
func NewString(s string) *Value { return &Value{kind: String, value: s} }

// NewArray returns an array holding vv in order.
func NewArray(vv ...*Value) *Value {
	if vv == nil {
		vv = []*Value{}
	}
	return &Value{kind: Array, value: vv}
}

// NewObject returns an object holding the entries of m. m is owned by the
// returned value afterwards.
func NewObject(m map[string]*Value) *Value {
	if m == nil {
		m = map[string]*Value{}
	}
	return &Value{kind: Object, value: m}
}

// Kind returns the kind of v. A nil value is Undefined.
func (v *Value) Kind() Kind {
	if v == nil {
		return Undefined
	}
	return v.kind
}

// Bool returns the flag of a Bool value.
func (v *Value) Bool() (b, ok bool) {
	if v.Kind() != Bool {
		return false, false
	}
	b, ok = v.value.(bool)
	return b, ok
}

// IsInt reports whether v is a Number stored as an integer.
func (v *Value) IsInt() bool {
	if v.Kind() != Number {
		return false
	}
	_, ok := v.value.(int64)
	return ok
}

// Int returns the integer of a Number stored as an integer.
func (v *Value) Int() (int64, bool) {
	if v.Kind() != Number {
		return 0, false
	}
	i, ok := v.value.(int64)
	return i, ok
}

// Float returns the value of any Number as float64. Integers are converted.
func (v *Value) Float() (float64, bool) {
	if v.Kind() != Number {
		return 0, false
	}
	switch n := v.value.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Str returns the verbatim content of a String value.
func (v *Value) Str() (string, bool) {
	if v.Kind() != String {
		return "", false
	}
	s, ok := v.value.(string)
	return s, ok
}

// Elems returns the elements of an Array. The slice must not be modified.
func (v *Value) Elems() []*Value {
	if v.Kind() != Array {
		return nil
	}
	vv, _ := v.value.([]*Value)
	return vv
}

// Keys returns the sorted keys of an Object, or nil for any other kind.
func (v *Value) Keys() []string {
	if v.Kind() != Object {
		return nil
	}
	m, _ := v.value.(map[string]*Value)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Member returns the value stored under key in an Object.
func (v *Value) Member(key string) (*Value, bool) {
	if v.Kind() != Object {
		return nil, false
	}
	m, _ := v.value.(map[string]*Value)
	w, ok := m[key]
	return w, ok
}

// Len gives the length of an array or items in an object.
func (v *Value) Len() int {
	switch v.Kind() {
	case Array:
		return len(v.Elems())
	case Object:
		m, _ := v.value.(map[string]*Value)
		return len(m)
	case Undefined:
		return 0
	default:
		return 1
	}
}

// Total returns the number of total nodes held by v.
func (v *Value) Total() int {
	switch v.Kind() {
	case Array:
		i := 1
		for _, e := range v.Elems() {
			i += e.Total()
		}
		return i
	case Object:
		i := 1
		m, _ := v.value.(map[string]*Value)
		for _, e := range m {
			i += e.Total()
		}
		return i
	default:
		return v.Len()
	}
}

// Get returns the value specified by path, a dot separated list of object
// keys and array indices. The empty path returns v itself.
func (v *Value) Get(path string) (*Value, error) {
	if path == "" {
		return v, nil
	}
	key, rest := path, ""
	if i := strings.IndexByte(path, '.'); i >= 0 {
		key, rest = path[:i], path[i+1:]
	}
	switch v.Kind() {
	case Object:
		m, ok := v.Member(key)
		if !ok {
			return nil, fmt.Errorf("no member %q", key)
		}
		return m.Get(rest)
	case Array:
		i, err := strconv.Atoi(key)
		if err != nil {
			return nil, errors.Wrapf(err, "array index %q", key)
		}
		vv := v.Elems()
		if i < 0 || i >= len(vv) {
			return nil, fmt.Errorf("index %d out of range [0:%d]", i, len(vv))
		}
		return vv[i].Get(rest)
	default:
		return nil, errors.Wrapf(ErrNotArrayOrObject, "at %q is %s", key, v.Kind())
	}
}

// Interface creates the Go representation of a value.
// The possible underlying types are:
//     Object    map[string]interface{}
//     Array     []interface{}
//     String    string
//     Number    int64 or float64
//     Bool      bool
//     Null      nil (with the error being nil too)
func (v *Value) Interface() (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	if !assertKind(v) {
		return nil, errors.Wrapf(ErrTypeMismatch, "want %s, got %T",
			v.Kind(), v.value)
	}
	switch v.Kind() {
	default:
		return v.value, nil
	case Object:
		m := make(map[string]interface{}, v.Len())
		for k, e := range v.value.(map[string]*Value) {
			itf, err := e.Interface()
			if err != nil {
				return nil, err
			}
			m[k] = itf
		}
		return m, nil
	case Array:
		s := make([]interface{}, 0, v.Len())
		for _, e := range v.Elems() {
			itf, err := e.Interface()
			if err != nil {
				return nil, err
			}
			s = append(s, itf)
		}
		return s, nil
	}
}

// Equal compares the values and all their children. Object key order is
// arbitrary. An integer and a float are never equal.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case Undefined:
		return true
	case Array:
		an, bn := a.Elems(), b.Elems()
		if len(an) != len(bn) {
			return false
		}
		for i := range an {
			if !Equal(an[i], bn[i]) {
				return false
			}
		}
		return true
	case Object:
		if a.Len() != b.Len() {
			return false
		}
		for k, e := range a.value.(map[string]*Value) {
			f, ok := b.Member(k)
			if !ok || !Equal(e, f) {
				return false
			}
		}
		return true
	default:
		return a.value == b.value
	}
}

// assertKind reports whether the payload of v matches its kind.
func assertKind(v *Value) bool {
	if v == nil {
		return true
	}
	switch v.value.(type) {
	case nil:
		return v.kind == Null || v.kind == Undefined
	case bool:
		return v.kind == Bool
	case int64, float64:
		return v.kind == Number
	case string:
		return v.kind == String
	case []*Value:
		return v.kind == Array
	case map[string]*Value:
		return v.kind == Object
	default:
		return false
	}
}

// FromGo reads in a Go value and generates a tree of it.
// Struct fields are named after their json tag if present.
func FromGo(val interface{}) (*Value, error) {
	if val == nil {
		return NewNull(), nil
	}
	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return NewBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > 1<<63-1 {
			return NewFloat(float64(u)), nil
		}
		return NewInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return NewFloat(v.Float()), nil
	case reflect.String:
		return NewString(v.String()), nil
	case reflect.Slice:
		if v.IsNil() {
			return NewNull(), nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return NewString(string(v.Bytes())), nil
		}
		fallthrough
	case reflect.Array:
		vv := make([]*Value, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			e, err := FromGo(v.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			vv = append(vv, e)
		}
		return NewArray(vv...), nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("invalid map key type %s", v.Type().Key())
		}
		m := make(map[string]*Value, v.Len())
		for _, key := range v.MapKeys() {
			e, err := FromGo(v.MapIndex(key).Interface())
			if err != nil {
				return nil, err
			}
			m[key.String()] = e
		}
		return NewObject(m), nil
	case reflect.Struct:
		m := make(map[string]*Value, v.NumField())
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			field := t.Field(i)
			if r, _ := utf8.DecodeRuneInString(field.Name); !unicode.IsUpper(r) {
				continue
			}
			key := strings.Split(field.Tag.Get("json"), ",")[0]
			if key == "-" {
				continue
			}
			if key == "" {
				key = field.Name
			}
			e, err := FromGo(v.Field(i).Interface())
			if err != nil {
				return nil, err
			}
			m[key] = e
		}
		return NewObject(m), nil
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return NewNull(), nil
		}
		return FromGo(v.Elem().Interface())
	default:
		return nil, fmt.Errorf("invalid type %s", v.Kind())
	}
}
