package query

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/aws/smithy-go"

	"github.com/Laisky/cloudsdk/apierror"
)

// DecodeResult reads a query-protocol response:
//
//	<{Action}Response>
//	  <{Action}Result>...</{Action}Result>
//	  <ResponseMetadata><RequestId>...</RequestId></ResponseMetadata>
//	</{Action}Response>
//
// The Result element is decoded into out with encoding/xml, so unknown
// elements are skipped and absent ones leave fields nil. out may be nil for
// operations without a result.
func DecodeResult(r io.Reader, action string, out any) (requestID string, err error) {
	dec := xml.NewDecoder(r)
	resultName := action + "Result"
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return requestID, nil
		}
		if err != nil {
			return requestID, errors.Wrapf(err, "decode %s response", action)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case resultName:
			if out == nil {
				if err := dec.Skip(); err != nil {
					return requestID, errors.Wrapf(err, "skip %s", resultName)
				}
				continue
			}
			if err := dec.DecodeElement(out, &se); err != nil {
				return requestID, errors.Wrapf(err, "decode %s", resultName)
			}
		case "RequestId":
			var id string
			if err := dec.DecodeElement(&id, &se); err != nil {
				return requestID, errors.Wrap(err, "decode RequestId")
			}
			requestID = strings.TrimSpace(id)
		}
	}
}

type errorDetail struct {
	Type    string `xml:"Type"`
	Code    string `xml:"Code"`
	Message string `xml:"Message"`
}

// DecodeError parses an error document:
//
//	<ErrorResponse>
//	  <Error><Type>Sender</Type><Code>...</Code><Message>...</Message></Error>
//	  <RequestId>...</RequestId>
//	</ErrorResponse>
//
// Bodies that cannot be parsed still yield an error whose code derives from status.
func DecodeError(body []byte, status int) *apierror.ServiceError {
	out := &apierror.ServiceError{
		StatusCode: status,
		Fault:      apierror.FaultFromStatus(status),
	}

	dec := xml.NewDecoder(bytes.NewReader(body))
	var detail errorDetail
	found := false
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "Error":
			if found {
				_ = dec.Skip()
				continue
			}
			if err := dec.DecodeElement(&detail, &se); err == nil {
				found = true
			}
		case "RequestId", "RequestID":
			var id string
			if err := dec.DecodeElement(&id, &se); err == nil {
				out.RequestID = strings.TrimSpace(id)
			}
		}
	}

	out.Code = strings.TrimSpace(detail.Code)
	out.Message = strings.TrimSpace(detail.Message)
	switch strings.TrimSpace(detail.Type) {
	case "Sender":
		out.Fault = smithy.FaultClient
	case "Receiver":
		out.Fault = smithy.FaultServer
	}
	if out.Code == "" {
		out.Code = apierror.CodeFromStatus(status)
		if out.Message == "" {
			out.Message = strings.TrimSpace(string(body))
		}
	}
	return out
}
