package restjson

import (
	"net/http"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestDecodeError(t *testing.T) {
	cases := []struct {
		name    string
		header  http.Header
		body    string
		status  int
		code    string
		message string
		fault   smithy.ErrorFault
	}{
		{
			name:    "header wins",
			header:  http.Header{"X-Amzn-Errortype": {"NotFoundException:http://internal.amazon.com/coral/com.amazonaws.lex/"}},
			body:    `{"message":"bot not found","__type":"Other"}`,
			status:  http.StatusNotFound,
			code:    "NotFoundException",
			message: "bot not found",
			fault:   smithy.FaultClient,
		},
		{
			name:    "body type with namespace",
			header:  http.Header{},
			body:    `{"__type":"com.amazonaws.lex#ConflictException","Message":"busy"}`,
			status:  http.StatusConflict,
			code:    "ConflictException",
			message: "busy",
			fault:   smithy.FaultClient,
		},
		{
			name:   "body code member",
			header: http.Header{},
			body:   `{"code":"InternalFailureException"}`,
			status: http.StatusInternalServerError,
			code:   "InternalFailureException",
			fault:  smithy.FaultServer,
		},
		{
			name:    "no code at all",
			header:  http.Header{},
			body:    `upstream timeout`,
			status:  http.StatusGatewayTimeout,
			code:    "GatewayTimeout",
			message: "upstream timeout",
			fault:   smithy.FaultServer,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.header.Set("X-Amzn-Requestid", "rid-1")
			e := DecodeError(tc.header, []byte(tc.body), tc.status)
			assert.Equal(t, tc.code, e.Code)
			assert.Equal(t, tc.message, e.Message)
			assert.Equal(t, tc.fault, e.Fault)
			assert.Equal(t, tc.status, e.StatusCode)
			assert.Equal(t, "rid-1", e.RequestID)
		})
	}
}

func TestErrorMember(t *testing.T) {
	body := []byte(`{"referenceType":"Intent","exampleReference":{"name":"x"}}`)
	assert.Equal(t, "Intent", ErrorMember(body, "referenceType"))
	assert.Equal(t, "", ErrorMember(body, "exampleReference"))
	assert.Equal(t, "", ErrorMember([]byte("nope"), "referenceType"))
}
