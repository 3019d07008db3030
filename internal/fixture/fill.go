// Package fixture builds fully populated values for codec tests.
package fixture

import (
	"fmt"
	"reflect"
	"time"
)

// Time is given to every time.Time field. It carries milliseconds, the finest
// precision either wire format keeps.
var Time = time.Date(2024, 5, 6, 7, 8, 9, 123000000, time.UTC)

// maxDepth stops recursive shapes.
const maxDepth = 32

var timeType = reflect.TypeOf(time.Time{})

// Fill sets every exported field reachable from v, which must be a non-nil
// pointer to a struct. Pointers are allocated and slices and maps get two
// entries. Strings and numbers are numbered so no two fields share a value.
// Fields for which skip returns true keep their zero value; skip may be nil.
// Embedded fields are never filled.
func Fill(v any, skip func(reflect.StructField) bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		panic(fmt.Sprintf("fixture: Fill needs a non-nil pointer, got %T", v))
	}
	f := &filler{skip: skip}
	f.fill(rv.Elem(), 0)
}

// New returns a filled value of the type proto points to. proto itself is
// left untouched.
func New(proto any, skip func(reflect.StructField) bool) any {
	v := reflect.New(reflect.TypeOf(proto).Elem()).Interface()
	Fill(v, skip)
	return v
}

type filler struct {
	skip func(reflect.StructField) bool
	n    int
}

func (f *filler) next() int {
	f.n++
	return f.n
}

func (f *filler) fill(v reflect.Value, depth int) {
	if depth > maxDepth {
		return
	}

	switch v.Kind() {
	case reflect.Pointer:
		p := reflect.New(v.Type().Elem())
		f.fill(p.Elem(), depth+1)
		v.Set(p)
	case reflect.Struct:
		if v.Type() == timeType {
			v.Set(reflect.ValueOf(Time))
			return
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() || sf.Anonymous {
				continue
			}
			if f.skip != nil && f.skip(sf) {
				continue
			}
			f.fill(v.Field(i), depth+1)
		}
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			v.SetBytes([]byte(fmt.Sprintf("blob-%d", f.next())))
			return
		}
		s := reflect.MakeSlice(v.Type(), 2, 2)
		for i := 0; i < s.Len(); i++ {
			f.fill(s.Index(i), depth+1)
		}
		v.Set(s)
	case reflect.Map:
		m := reflect.MakeMapWithSize(v.Type(), 2)
		for i := 0; i < 2; i++ {
			k := reflect.New(v.Type().Key()).Elem()
			f.fill(k, depth+1)
			e := reflect.New(v.Type().Elem()).Elem()
			f.fill(e, depth+1)
			m.SetMapIndex(k, e)
		}
		v.Set(m)
	case reflect.String:
		v.SetString(fmt.Sprintf("value-%d", f.next()))
	case reflect.Bool:
		// alternate so both literals reach the wire
		v.SetBool(f.next()%2 == 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(int64(f.next() % 100))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(uint64(f.next() % 100))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(float64(f.next()) + 0.25)
	}
}
