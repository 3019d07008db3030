package apierror

import (
	"strings"
)

// ParamError describes one invalid input field.
type ParamError struct {
	Field  string
	Reason string
}

// InvalidParamsError is returned before any network call when an input cannot
// be marshalled: nil input, missing required fields, or empty path parameters.
type InvalidParamsError struct {
	Context string
	Fields  []ParamError
}

func (e *InvalidParamsError) Add(field, reason string) {
	e.Fields = append(e.Fields, ParamError{Field: field, Reason: reason})
}

func (e *InvalidParamsError) Len() int { return len(e.Fields) }

func (e *InvalidParamsError) Error() string {
	var b strings.Builder
	b.WriteString("invalid parameters")
	if e.Context != "" {
		b.WriteString(" for ")
		b.WriteString(e.Context)
	}
	for i, f := range e.Fields {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(f.Field)
		b.WriteString(" ")
		b.WriteString(f.Reason)
	}
	return b.String()
}
