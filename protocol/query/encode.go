// Package query implements the form-encoded request side and the XML response
// side of the AWS query protocol.
//
// Input fields are named after their Go field name, which matches the wire
// member name, unless a `query:"Name"` tag overrides it. Lists are written as
// Name.Member.N (1-based) with Member taken from the `member:"X"` tag, falling
// back to "member". nil pointers and nil slices are never written; a non-nil
// empty slice is written as "Name=" so the service can tell it from absence.
package query

import (
	"encoding/base64"
	"net/url"
	"reflect"
	"strconv"
	"time"

	"github.com/Laisky/errors/v2"
)

// TimeFormat is the ISO-8601 layout used for timestamps in query requests.
const TimeFormat = "2006-01-02T15:04:05.999Z"

var timeType = reflect.TypeOf(time.Time{})

// Encode flattens in into form values, starting with Action and Version.
func Encode(action, version string, in any) (url.Values, error) {
	v := url.Values{}
	v.Set("Action", action)
	v.Set("Version", version)
	if in == nil {
		return v, nil
	}

	rv := reflect.ValueOf(in)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return v, nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, errors.Errorf("query input must be a struct, got %s", rv.Kind())
	}

	if err := encodeStruct(v, rv, ""); err != nil {
		return nil, errors.Wrapf(err, "encode %s", action)
	}
	return v, nil
}

func fieldName(f reflect.StructField) (string, bool) {
	if f.PkgPath != "" || f.Anonymous {
		return "", false
	}
	name := f.Tag.Get("query")
	if name == "-" {
		return "", false
	}
	if name == "" {
		name = f.Name
	}
	return name, true
}

func memberName(tag reflect.StructTag) string {
	if m := tag.Get("member"); m != "" {
		return m
	}
	return "member"
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func encodeStruct(v url.Values, rv reflect.Value, prefix string) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, ok := fieldName(f)
		if !ok {
			continue
		}
		if err := encodeField(v, rv.Field(i), join(prefix, name), f.Tag); err != nil {
			return err
		}
	}
	return nil
}

func encodeField(v url.Values, fv reflect.Value, name string, tag reflect.StructTag) error {
	switch fv.Kind() {
	case reflect.Pointer:
		if fv.IsNil() {
			return nil
		}
		return encodeField(v, fv.Elem(), name, tag)
	case reflect.Slice:
		if fv.IsNil() {
			return nil
		}
		if fv.Type().Elem().Kind() == reflect.Uint8 {
			v.Set(name, base64.StdEncoding.EncodeToString(fv.Bytes()))
			return nil
		}
		if fv.Len() == 0 {
			v.Set(name, "")
			return nil
		}
		member := memberName(tag)
		// nil elements are dropped and the numbering stays contiguous
		n := 0
		for i := 0; i < fv.Len(); i++ {
			elem := fv.Index(i)
			if elem.Kind() == reflect.Pointer {
				if elem.IsNil() {
					continue
				}
				elem = elem.Elem()
			}
			n++
			key := name + "." + member + "." + strconv.Itoa(n)
			if elem.Kind() == reflect.String {
				v.Set(key, elem.String())
				continue
			}
			if err := encodeField(v, elem, key, ""); err != nil {
				return err
			}
		}
		if n == 0 {
			v.Set(name, "")
		}
		return nil
	case reflect.Struct:
		if fv.Type() == timeType {
			v.Set(name, fv.Interface().(time.Time).UTC().Format(TimeFormat))
			return nil
		}
		return encodeStruct(v, fv, name)
	case reflect.String:
		// string kinds held by value are enums: empty means unset
		if fv.Len() == 0 {
			return nil
		}
		v.Set(name, fv.String())
		return nil
	default:
		s, err := formatScalar(fv)
		if err != nil {
			return errors.Wrapf(err, "field %s", name)
		}
		v.Set(name, s)
		return nil
	}
}

func formatScalar(fv reflect.Value) (string, error) {
	switch fv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(fv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(fv.Int(), 10), nil
	case reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(fv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(fv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(fv.Float(), 'f', -1, 64), nil
	default:
		return "", errors.Errorf("unsupported kind %s", fv.Kind())
	}
}
