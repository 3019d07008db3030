package lexmodelbuilding

import (
	"context"
	"net/http"
	"time"

	"github.com/Laisky/cloudsdk/protocol/restjson"
	"github.com/Laisky/cloudsdk/transport"
)

type CreateIntentVersionInput struct {
	Name     *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	Checksum *string `json:"checksum"`
}

type CreateIntentVersionOutput struct {
	transport.Metadata

	Name                  *string              `json:"name"`
	Description           *string              `json:"description"`
	Slots                 []Slot               `json:"slots"`
	SampleUtterances      []string             `json:"sampleUtterances"`
	ConfirmationPrompt    *Prompt              `json:"confirmationPrompt"`
	RejectionStatement    *Statement           `json:"rejectionStatement"`
	FollowUpPrompt        *FollowUpPrompt      `json:"followUpPrompt"`
	ConclusionStatement   *Statement           `json:"conclusionStatement"`
	DialogCodeHook        *CodeHook            `json:"dialogCodeHook"`
	FulfillmentActivity   *FulfillmentActivity `json:"fulfillmentActivity"`
	ParentIntentSignature *string              `json:"parentIntentSignature"`
	LastUpdatedDate       *time.Time           `json:"lastUpdatedDate"`
	CreatedDate           *time.Time           `json:"createdDate"`
	Version               *string              `json:"version"`
	Checksum              *string              `json:"checksum"`
}

func (c *Client) CreateIntentVersion(ctx context.Context, in *CreateIntentVersionInput) (*CreateIntentVersionOutput, error) {
	out := new(CreateIntentVersionOutput)
	op := restjson.Operation{Name: "CreateIntentVersion", Method: http.MethodPost, Path: "/intents/{name}/versions"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteIntentInput struct {
	Name *string `location:"uri" locationName:"name" json:"-" validate:"required"`
}

type DeleteIntentOutput struct {
	transport.Metadata
}

// DeleteIntent removes every version of an intent that no bot references.
func (c *Client) DeleteIntent(ctx context.Context, in *DeleteIntentInput) (*DeleteIntentOutput, error) {
	out := new(DeleteIntentOutput)
	op := restjson.Operation{Name: "DeleteIntent", Method: http.MethodDelete, Path: "/intents/{name}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteIntentVersionInput struct {
	Name    *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	Version *string `location:"uri" locationName:"version" json:"-" validate:"required"`
}

type DeleteIntentVersionOutput struct {
	transport.Metadata
}

func (c *Client) DeleteIntentVersion(ctx context.Context, in *DeleteIntentVersionInput) (*DeleteIntentVersionOutput, error) {
	out := new(DeleteIntentVersionOutput)
	op := restjson.Operation{Name: "DeleteIntentVersion", Method: http.MethodDelete, Path: "/intents/{name}/versions/{version}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetIntentInput struct {
	Name    *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	Version *string `location:"uri" locationName:"version" json:"-" validate:"required"`
}

type GetIntentOutput struct {
	transport.Metadata

	Name                  *string              `json:"name"`
	Description           *string              `json:"description"`
	Slots                 []Slot               `json:"slots"`
	SampleUtterances      []string             `json:"sampleUtterances"`
	ConfirmationPrompt    *Prompt              `json:"confirmationPrompt"`
	RejectionStatement    *Statement           `json:"rejectionStatement"`
	FollowUpPrompt        *FollowUpPrompt      `json:"followUpPrompt"`
	ConclusionStatement   *Statement           `json:"conclusionStatement"`
	DialogCodeHook        *CodeHook            `json:"dialogCodeHook"`
	FulfillmentActivity   *FulfillmentActivity `json:"fulfillmentActivity"`
	ParentIntentSignature *string              `json:"parentIntentSignature"`
	LastUpdatedDate       *time.Time           `json:"lastUpdatedDate"`
	CreatedDate           *time.Time           `json:"createdDate"`
	Version               *string              `json:"version"`
	Checksum              *string              `json:"checksum"`
}

func (c *Client) GetIntent(ctx context.Context, in *GetIntentInput) (*GetIntentOutput, error) {
	out := new(GetIntentOutput)
	op := restjson.Operation{Name: "GetIntent", Method: http.MethodGet, Path: "/intents/{name}/versions/{version}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetIntentVersionsInput struct {
	Name       *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	NextToken  *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults *int32  `location:"querystring" locationName:"maxResults" json:"-"`
}

type GetIntentVersionsOutput struct {
	transport.Metadata

	Intents   []IntentMetadata `json:"intents"`
	NextToken *string          `json:"nextToken"`
}

func (c *Client) GetIntentVersions(ctx context.Context, in *GetIntentVersionsInput) (*GetIntentVersionsOutput, error) {
	out := new(GetIntentVersionsOutput)
	op := restjson.Operation{Name: "GetIntentVersions", Method: http.MethodGet, Path: "/intents/{name}/versions/"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetIntentsInput struct {
	NextToken    *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults   *int32  `location:"querystring" locationName:"maxResults" json:"-"`
	NameContains *string `location:"querystring" locationName:"nameContains" json:"-"`
}

type GetIntentsOutput struct {
	transport.Metadata

	Intents   []IntentMetadata `json:"intents"`
	NextToken *string          `json:"nextToken"`
}

func (c *Client) GetIntents(ctx context.Context, in *GetIntentsInput) (*GetIntentsOutput, error) {
	out := new(GetIntentsOutput)
	op := restjson.Operation{Name: "GetIntents", Method: http.MethodGet, Path: "/intents/"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type PutIntentInput struct {
	Name *string `location:"uri" locationName:"name" json:"-" validate:"required"`

	Description           *string              `json:"description"`
	Slots                 []Slot               `json:"slots" validate:"omitempty,dive"`
	SampleUtterances      []string             `json:"sampleUtterances"`
	ConfirmationPrompt    *Prompt              `json:"confirmationPrompt"`
	RejectionStatement    *Statement           `json:"rejectionStatement"`
	FollowUpPrompt        *FollowUpPrompt      `json:"followUpPrompt"`
	ConclusionStatement   *Statement           `json:"conclusionStatement"`
	DialogCodeHook        *CodeHook            `json:"dialogCodeHook"`
	FulfillmentActivity   *FulfillmentActivity `json:"fulfillmentActivity"`
	ParentIntentSignature *string              `json:"parentIntentSignature"`
	Checksum              *string              `json:"checksum"`
	CreateVersion         *bool                `json:"createVersion"`
}

type PutIntentOutput struct {
	transport.Metadata

	Name                  *string              `json:"name"`
	Description           *string              `json:"description"`
	Slots                 []Slot               `json:"slots"`
	SampleUtterances      []string             `json:"sampleUtterances"`
	ConfirmationPrompt    *Prompt              `json:"confirmationPrompt"`
	RejectionStatement    *Statement           `json:"rejectionStatement"`
	FollowUpPrompt        *FollowUpPrompt      `json:"followUpPrompt"`
	ConclusionStatement   *Statement           `json:"conclusionStatement"`
	DialogCodeHook        *CodeHook            `json:"dialogCodeHook"`
	FulfillmentActivity   *FulfillmentActivity `json:"fulfillmentActivity"`
	ParentIntentSignature *string              `json:"parentIntentSignature"`
	LastUpdatedDate       *time.Time           `json:"lastUpdatedDate"`
	CreatedDate           *time.Time           `json:"createdDate"`
	Version               *string              `json:"version"`
	Checksum              *string              `json:"checksum"`
	CreateVersion         *bool                `json:"createVersion"`
}

// PutIntent creates or replaces the $LATEST version of an intent. Omitted
// fields are cleared, not kept.
func (c *Client) PutIntent(ctx context.Context, in *PutIntentInput) (*PutIntentOutput, error) {
	out := new(PutIntentOutput)
	op := restjson.Operation{Name: "PutIntent", Method: http.MethodPut, Path: "/intents/{name}/versions/$LATEST"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetBuiltinIntentInput struct {
	Signature *string `location:"uri" locationName:"signature" json:"-" validate:"required"`
}

type GetBuiltinIntentOutput struct {
	transport.Metadata

	Signature        *string             `json:"signature"`
	SupportedLocales []Locale            `json:"supportedLocales"`
	Slots            []BuiltinIntentSlot `json:"slots"`
}

func (c *Client) GetBuiltinIntent(ctx context.Context, in *GetBuiltinIntentInput) (*GetBuiltinIntentOutput, error) {
	out := new(GetBuiltinIntentOutput)
	op := restjson.Operation{Name: "GetBuiltinIntent", Method: http.MethodGet, Path: "/builtins/intents/{signature}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetBuiltinIntentsInput struct {
	Locale            Locale  `location:"querystring" locationName:"locale" json:"-"`
	SignatureContains *string `location:"querystring" locationName:"signatureContains" json:"-"`
	NextToken         *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults        *int32  `location:"querystring" locationName:"maxResults" json:"-"`
}

type GetBuiltinIntentsOutput struct {
	transport.Metadata

	Intents   []BuiltinIntentMetadata `json:"intents"`
	NextToken *string                 `json:"nextToken"`
}

func (c *Client) GetBuiltinIntents(ctx context.Context, in *GetBuiltinIntentsInput) (*GetBuiltinIntentsOutput, error) {
	out := new(GetBuiltinIntentsOutput)
	op := restjson.Operation{Name: "GetBuiltinIntents", Method: http.MethodGet, Path: "/builtins/intents/"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
