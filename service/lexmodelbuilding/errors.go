package lexmodelbuilding

import (
	"github.com/Laisky/cloudsdk/apierror"
	"github.com/Laisky/cloudsdk/protocol/restjson"
	"github.com/Laisky/cloudsdk/transport"
)

type (
	// BadRequestException: the request was malformed or a field value is invalid.
	BadRequestException struct{ *apierror.ServiceError }
	// ConflictException: another operation on the resource is in progress.
	ConflictException        struct{ *apierror.ServiceError }
	InternalFailureException struct{ *apierror.ServiceError }
	NotFoundException        struct{ *apierror.ServiceError }
	// PreconditionFailedException: the checksum does not match the latest revision.
	PreconditionFailedException struct{ *apierror.ServiceError }
)

// LimitExceededException is returned when the request rate is too high.
type LimitExceededException struct {
	*apierror.ServiceError

	// RetryAfterSeconds is the Retry-After header value.
	RetryAfterSeconds *string
}

// ResourceInUseException is returned when deleting a resource that another
// resource still refers to.
type ResourceInUseException struct {
	*apierror.ServiceError

	ReferenceType    ReferenceType
	ExampleReference *ResourceReference
}

var errorRegistry = apierror.NewRegistry().
	Register("BadRequestException", func(b *apierror.ServiceError) error { return &BadRequestException{b} }).
	Register("ConflictException", func(b *apierror.ServiceError) error { return &ConflictException{b} }).
	Register("InternalFailureException", func(b *apierror.ServiceError) error { return &InternalFailureException{b} }).
	Register("LimitExceededException", func(b *apierror.ServiceError) error { return &LimitExceededException{ServiceError: b} }).
	Register("NotFoundException", func(b *apierror.ServiceError) error { return &NotFoundException{b} }).
	Register("PreconditionFailedException", func(b *apierror.ServiceError) error { return &PreconditionFailedException{b} }).
	Register("ResourceInUseException", func(b *apierror.ServiceError) error { return &ResourceInUseException{ServiceError: b} })

// ErrorCodes lists the codes that map to typed errors, in lookup order.
func ErrorCodes() []string { return errorRegistry.Codes() }

func decodeError(resp *transport.Response) error {
	base := restjson.DecodeError(resp.Header, resp.Body, resp.StatusCode)
	if base.RequestID == "" {
		base.RequestID = resp.RequestID
	}

	err := errorRegistry.Resolve(base)
	switch e := err.(type) {
	case *LimitExceededException:
		if v := resp.Header.Get("Retry-After"); v != "" {
			e.RetryAfterSeconds = &v
		}
	case *ResourceInUseException:
		e.ReferenceType = ReferenceType(restjson.ErrorMember(resp.Body, "referenceType"))
		var detail struct {
			ExampleReference *ResourceReference `json:"exampleReference"`
		}
		if restjson.UnmarshalJSON(resp.Body, &detail) == nil {
			e.ExampleReference = detail.ExampleReference
		}
	}
	return err
}
