// Package restjson implements the REST-JSON protocol: URI template expansion,
// query string binding and the JSON body codec.
//
// Input fields select their location with struct tags:
//
//	Name *string `location:"uri" locationName:"name" json:"-"`
//	NextToken *string `location:"querystring" locationName:"nextToken" json:"-"`
//	Description *string `json:"description"`
//
// Untagged locations go to the JSON body.
package restjson

import (
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
)

// ContentType is sent with every request body.
const ContentType = "application/x-amz-json-1.1"

// Operation describes the HTTP binding of one API operation.
type Operation struct {
	Name   string
	Method string
	// Path is the URI template, e.g. /bots/{name}/versions/{version}. It may
	// carry a fixed query such as ?view=aggregation.
	Path string
}

// Request is the protocol-level result of marshalling an input.
type Request struct {
	Method string
	// Path is already escaped.
	Path  string
	Query url.Values
	// Body is nil for bodiless requests.
	Body []byte
}

// Marshal binds in to op's URI template, query string and body.
func Marshal(op Operation, in any) (*Request, error) {
	path, fixed, _ := strings.Cut(op.Path, "?")
	req := &Request{
		Method: op.Method,
		Query:  url.Values{},
	}
	if fixed != "" {
		q, err := url.ParseQuery(fixed)
		if err != nil {
			return nil, errors.Wrapf(err, "parse fixed query of %s", op.Name)
		}
		req.Query = q
	}

	rv := reflect.ValueOf(in)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, errors.Errorf("%s: input is nil", op.Name)
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, errors.Errorf("%s: input is nil", op.Name)
	}
	if rv.Kind() != reflect.Struct {
		return nil, errors.Errorf("%s: input must be a struct, got %s", op.Name, rv.Kind())
	}

	hasBody := false
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" || f.Anonymous {
			continue
		}
		fv := rv.Field(i)
		loc := f.Tag.Get("location")
		name := f.Tag.Get("locationName")
		if name == "" {
			name = f.Name
		}

		switch loc {
		case "uri":
			placeholder := "{" + name + "}"
			if !strings.Contains(path, placeholder) {
				return nil, errors.Errorf("%s: URI template has no placeholder %s", op.Name, placeholder)
			}
			if omitted(fv) {
				return nil, errors.Errorf("%s: URI field %s is not set", op.Name, name)
			}
			s, err := formatParam(fv)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: field %s", op.Name, name)
			}
			if s == "" {
				return nil, errors.Errorf("%s: URI field %s is empty", op.Name, name)
			}
			path = strings.ReplaceAll(path, placeholder, url.PathEscape(s))
		case "querystring":
			if omitted(fv) {
				continue
			}
			if err := addQuery(req.Query, name, fv); err != nil {
				return nil, errors.Wrapf(err, "%s: field %s", op.Name, name)
			}
		case "":
			if _, ok := jsonName(f); ok && !omitted(fv) {
				hasBody = true
			}
		default:
			return nil, errors.Errorf("%s: field %s has unsupported location %q", op.Name, f.Name, loc)
		}
	}

	if i := strings.IndexByte(path, '{'); i >= 0 {
		end := strings.IndexByte(path[i:], '}')
		if end > 0 {
			return nil, errors.Errorf("%s: unsubstituted URI placeholder %s", op.Name, path[i:i+end+1])
		}
	}
	req.Path = path

	if hasBody || op.Method == http.MethodPut || op.Method == http.MethodPost {
		body, err := BuildJSON(rv.Interface())
		if err != nil {
			return nil, errors.Wrapf(err, "%s: build body", op.Name)
		}
		req.Body = body
	}
	return req, nil
}

func addQuery(q url.Values, name string, fv reflect.Value) error {
	for fv.Kind() == reflect.Pointer {
		fv = fv.Elem()
	}
	if fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() != reflect.Uint8 {
		for i := 0; i < fv.Len(); i++ {
			s, err := formatParam(fv.Index(i))
			if err != nil {
				return err
			}
			q.Add(name, s)
		}
		return nil
	}
	s, err := formatParam(fv)
	if err != nil {
		return err
	}
	q.Set(name, s)
	return nil
}

// formatParam renders a scalar for the URI or the query string.
func formatParam(v reflect.Value) (string, error) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", errors.New("nil value")
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits()), nil
	case reflect.Struct:
		if v.Type() == timeType {
			return v.Interface().(time.Time).UTC().Format(time.RFC3339), nil
		}
	}
	return "", errors.Errorf("unsupported parameter type %s", v.Type())
}
