package restjson

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
)

var (
	timeType  = reflect.TypeOf(time.Time{})
	bytesType = reflect.TypeOf([]byte(nil))
)

// jsonName returns the member name of a body field. Fields bound to the URI,
// the query string or headers never reach the body.
func jsonName(f reflect.StructField) (string, bool) {
	if f.PkgPath != "" || f.Anonymous {
		return "", false
	}
	if f.Tag.Get("location") != "" {
		return "", false
	}
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" {
		tag = f.Name
	}
	return tag, true
}

// omitted reports whether a value is absent and must not be written.
func omitted(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return v.IsNil()
	case reflect.String:
		// string kinds held by value are enums: empty means unset
		return v.Len() == 0
	default:
		return false
	}
}

// BuildJSON serializes v, walking struct fields in declaration order and
// skipping absent ones.
func BuildJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		buf.WriteString("{}")
		return buf.Bytes(), nil
	}
	if err := encodeValue(&buf, rv, "$"); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeStruct(buf *bytes.Buffer, rv reflect.Value, path string) error {
	t := rv.Type()
	buf.WriteByte('{')
	n := 0
	for i := 0; i < t.NumField(); i++ {
		name, ok := jsonName(t.Field(i))
		if !ok {
			continue
		}
		fv := rv.Field(i)
		if omitted(fv) {
			continue
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		writeString(buf, name)
		buf.WriteByte(':')
		if err := encodeValue(buf, fv, path+"."+name); err != nil {
			return err
		}
		n++
	}
	buf.WriteByte('}')
	return nil
}

func encodeValue(buf *bytes.Buffer, v reflect.Value, path string) error {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			buf.WriteString("null")
			return nil
		}
		return encodeValue(buf, v.Elem(), path)
	case reflect.Struct:
		if v.Type() == timeType {
			t := v.Interface().(time.Time)
			buf.WriteString(strconv.FormatFloat(float64(t.UnixMilli())/1000, 'f', -1, 64))
			return nil
		}
		return encodeStruct(buf, v, path)
	case reflect.Slice:
		if v.Type() == bytesType || v.Type().Elem().Kind() == reflect.Uint8 {
			writeString(buf, base64.StdEncoding.EncodeToString(v.Bytes()))
			return nil
		}
		buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, v.Index(i), path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return errors.Errorf("%s: map keys must be strings, got %s", path, v.Type().Key())
		}
		keys := make([]string, 0, v.Len())
		for _, k := range v.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, k)
			buf.WriteByte(':')
			kv := reflect.ValueOf(k).Convert(v.Type().Key())
			if err := encodeValue(buf, v.MapIndex(kv), path+"."+k); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case reflect.String:
		writeString(buf, v.String())
		return nil
	case reflect.Bool:
		buf.WriteString(strconv.FormatBool(v.Bool()))
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
		return nil
	case reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		buf.WriteString(strconv.FormatUint(v.Uint(), 10))
		return nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		switch {
		case math.IsNaN(f):
			writeString(buf, "NaN")
		case math.IsInf(f, 1):
			writeString(buf, "Infinity")
		case math.IsInf(f, -1):
			writeString(buf, "-Infinity")
		default:
			buf.WriteString(strconv.FormatFloat(f, 'f', -1, v.Type().Bits()))
		}
		return nil
	default:
		return errors.Errorf("%s: unsupported type %s", path, v.Type())
	}
}

func writeString(buf *bytes.Buffer, s string) {
	// json.Marshal never fails on a string
	b, _ := json.Marshal(s)
	buf.Write(b)
}

// UnmarshalJSON fills out from a JSON document. Unknown members are skipped
// and null leaves the target unset.
func UnmarshalJSON(data []byte, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.New("json decode target must be a non-nil pointer")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return errors.Wrap(err, "parse json")
	}
	return assign(rv.Elem(), doc, "$")
}

func assign(fv reflect.Value, val any, path string) error {
	if val == nil {
		return nil
	}

	switch fv.Kind() {
	case reflect.Pointer:
		elem := reflect.New(fv.Type().Elem())
		if err := assign(elem.Elem(), val, path); err != nil {
			return err
		}
		fv.Set(elem)
		return nil
	case reflect.Interface:
		fv.Set(reflect.ValueOf(val))
		return nil
	case reflect.Struct:
		if fv.Type() == timeType {
			ts, err := parseTime(val)
			if err != nil {
				return errors.Wrapf(err, "%s", path)
			}
			fv.Set(reflect.ValueOf(ts))
			return nil
		}
		obj, ok := val.(map[string]any)
		if !ok {
			return mismatch(path, "object", val)
		}
		t := fv.Type()
		for i := 0; i < t.NumField(); i++ {
			name, ok := jsonName(t.Field(i))
			if !ok {
				continue
			}
			raw, present := obj[name]
			if !present {
				continue
			}
			if err := assign(fv.Field(i), raw, path+"."+name); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice:
		if fv.Type().Elem().Kind() == reflect.Uint8 {
			s, ok := val.(string)
			if !ok {
				return mismatch(path, "base64 string", val)
			}
			b, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return errors.Wrapf(err, "%s", path)
			}
			fv.SetBytes(b)
			return nil
		}
		arr, ok := val.([]any)
		if !ok {
			return mismatch(path, "array", val)
		}
		out := reflect.MakeSlice(fv.Type(), len(arr), len(arr))
		for i, item := range arr {
			if err := assign(out.Index(i), item, path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
		fv.Set(out)
		return nil
	case reflect.Map:
		obj, ok := val.(map[string]any)
		if !ok {
			return mismatch(path, "object", val)
		}
		if fv.Type().Key().Kind() != reflect.String {
			return errors.Errorf("%s: map keys must be strings, got %s", path, fv.Type().Key())
		}
		out := reflect.MakeMapWithSize(fv.Type(), len(obj))
		for k, item := range obj {
			elem := reflect.New(fv.Type().Elem()).Elem()
			if err := assign(elem, item, path+"."+k); err != nil {
				return err
			}
			out.SetMapIndex(reflect.ValueOf(k).Convert(fv.Type().Key()), elem)
		}
		fv.Set(out)
		return nil
	case reflect.String:
		s, ok := val.(string)
		if !ok {
			return mismatch(path, "string", val)
		}
		fv.SetString(s)
		return nil
	case reflect.Bool:
		b, ok := val.(bool)
		if !ok {
			return mismatch(path, "boolean", val)
		}
		fv.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		num, ok := val.(json.Number)
		if !ok {
			return mismatch(path, "integer", val)
		}
		n, err := strconv.ParseInt(num.String(), 10, fv.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "%s", path)
		}
		fv.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		num, ok := val.(json.Number)
		if !ok {
			return mismatch(path, "integer", val)
		}
		n, err := strconv.ParseUint(num.String(), 10, fv.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "%s", path)
		}
		fv.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := parseFloat(val)
		if err != nil {
			return errors.Wrapf(err, "%s", path)
		}
		fv.SetFloat(f)
		return nil
	default:
		return errors.Errorf("%s: unsupported type %s", path, fv.Type())
	}
}

func parseFloat(val any) (float64, error) {
	switch v := val.(type) {
	case json.Number:
		return strconv.ParseFloat(v.String(), 64)
	case string:
		switch v {
		case "NaN":
			return math.NaN(), nil
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		}
	}
	return 0, errors.Errorf("expected number, got %T", val)
}

// parseTime accepts epoch seconds (the service default) and ISO-8601 strings.
func parseTime(val any) (time.Time, error) {
	switch v := val.(type) {
	case json.Number:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return time.Time{}, err
		}
		sec, frac := math.Modf(f)
		return time.Unix(int64(sec), int64(math.Round(frac*1e3))*int64(time.Millisecond)).UTC(), nil
	case string:
		return time.Parse(time.RFC3339Nano, v)
	default:
		return time.Time{}, errors.Errorf("expected timestamp, got %T", val)
	}
}

func mismatch(path, want string, got any) error {
	return errors.Errorf("%s: expected %s, got %T", path, want, got)
}
