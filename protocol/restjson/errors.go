package restjson

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Laisky/cloudsdk/apierror"
)

// DecodeError builds a ServiceError from a failed REST-JSON response. The code
// comes from the X-Amzn-Errortype header when present, otherwise from the
// body's __type or code member.
func DecodeError(header http.Header, body []byte, status int) *apierror.ServiceError {
	out := &apierror.ServiceError{
		StatusCode: status,
		Fault:      apierror.FaultFromStatus(status),
		RequestID:  header.Get("X-Amzn-Requestid"),
	}

	var doc map[string]any
	if len(bytes.TrimSpace(body)) > 0 {
		_ = json.Unmarshal(body, &doc)
	}

	out.Code = sanitizeCode(header.Get("X-Amzn-Errortype"))
	if out.Code == "" {
		out.Code = sanitizeCode(stringMember(doc, "__type", "code", "Code"))
	}
	out.Message = stringMember(doc, "message", "Message", "errorMessage")

	if out.Code == "" {
		out.Code = apierror.CodeFromStatus(status)
		if out.Message == "" && doc == nil {
			out.Message = strings.TrimSpace(string(body))
		}
	}
	return out
}

// sanitizeCode strips the ":http://..." suffix and any namespace prefix
// ("com.amazonaws.lex#NotFoundException").
func sanitizeCode(code string) string {
	code = strings.TrimSpace(code)
	if i := strings.IndexByte(code, ':'); i >= 0 {
		code = code[:i]
	}
	if i := strings.LastIndexByte(code, '#'); i >= 0 {
		code = code[i+1:]
	}
	return code
}

func stringMember(doc map[string]any, names ...string) string {
	for _, n := range names {
		if s, ok := doc[n].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// ErrorMember returns a named string member of an error body, or "".
// Typed errors use it to fill their extra fields.
func ErrorMember(body []byte, name string) string {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return ""
	}
	return stringMember(doc, name)
}
