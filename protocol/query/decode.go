package query

import (
	"encoding/base64"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
)

// Decode is the inverse of Encode: it fills out from form values produced for
// the same input type. Action and Version are ignored. Keys absent from values
// leave the corresponding fields nil.
func Decode(values url.Values, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("query decode target must be a non-nil pointer")
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errors.Errorf("query decode target must point to a struct, got %s", rv.Kind())
	}
	d := &decoder{values: values}
	return d.decodeStruct(rv, "")
}

type decoder struct {
	values url.Values
}

// present reports whether key or any nested key under it exists.
func (d *decoder) present(key string) bool {
	if _, ok := d.values[key]; ok {
		return true
	}
	prefix := key + "."
	for k := range d.values {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

func (d *decoder) decodeStruct(rv reflect.Value, prefix string) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, ok := fieldName(f)
		if !ok {
			continue
		}
		if err := d.decodeField(rv.Field(i), join(prefix, name), f.Tag); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) decodeField(fv reflect.Value, name string, tag reflect.StructTag) error {
	if !d.present(name) {
		return nil
	}

	switch fv.Kind() {
	case reflect.Pointer:
		elem := reflect.New(fv.Type().Elem())
		if err := d.decodeField(elem.Elem(), name, tag); err != nil {
			return err
		}
		fv.Set(elem)
		return nil
	case reflect.Slice:
		raw, scalar := d.values[name]
		if fv.Type().Elem().Kind() == reflect.Uint8 {
			b, err := base64.StdEncoding.DecodeString(first(raw))
			if err != nil {
				return errors.Wrapf(err, "field %s", name)
			}
			fv.SetBytes(b)
			return nil
		}
		if scalar && first(raw) == "" {
			fv.Set(reflect.MakeSlice(fv.Type(), 0, 0))
			return nil
		}
		member := memberName(tag)
		out := reflect.MakeSlice(fv.Type(), 0, 4)
		for i := 1; ; i++ {
			key := name + "." + member + "." + strconv.Itoa(i)
			if !d.present(key) {
				break
			}
			elem := reflect.New(fv.Type().Elem()).Elem()
			if err := d.decodeField(elem, key, ""); err != nil {
				return err
			}
			out = reflect.Append(out, elem)
		}
		fv.Set(out)
		return nil
	case reflect.Struct:
		if fv.Type() == timeType {
			ts, err := time.Parse(time.RFC3339Nano, first(d.values[name]))
			if err != nil {
				return errors.Wrapf(err, "field %s", name)
			}
			fv.Set(reflect.ValueOf(ts))
			return nil
		}
		return d.decodeStruct(fv, name)
	default:
		return setScalar(fv, first(d.values[name]), name)
	}
}

func first(vs []string) string {
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

func setScalar(fv reflect.Value, s, name string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return errors.Wrapf(err, "field %s", name)
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, fv.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "field %s", name)
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, fv.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "field %s", name)
		}
		fv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, fv.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "field %s", name)
		}
		fv.SetFloat(f)
	default:
		return errors.Errorf("field %s: unsupported kind %s", name, fv.Kind())
	}
	return nil
}
