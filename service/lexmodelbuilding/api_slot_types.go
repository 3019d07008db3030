package lexmodelbuilding

import (
	"context"
	"net/http"
	"time"

	"github.com/Laisky/cloudsdk/protocol/restjson"
	"github.com/Laisky/cloudsdk/transport"
)

type CreateSlotTypeVersionInput struct {
	Name     *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	Checksum *string `json:"checksum"`
}

type CreateSlotTypeVersionOutput struct {
	transport.Metadata

	Name                   *string                    `json:"name"`
	Description            *string                    `json:"description"`
	EnumerationValues      []EnumerationValue         `json:"enumerationValues"`
	LastUpdatedDate        *time.Time                 `json:"lastUpdatedDate"`
	CreatedDate            *time.Time                 `json:"createdDate"`
	Version                *string                    `json:"version"`
	Checksum               *string                    `json:"checksum"`
	ValueSelectionStrategy SlotValueSelectionStrategy `json:"valueSelectionStrategy"`
}

func (c *Client) CreateSlotTypeVersion(ctx context.Context, in *CreateSlotTypeVersionInput) (*CreateSlotTypeVersionOutput, error) {
	out := new(CreateSlotTypeVersionOutput)
	op := restjson.Operation{Name: "CreateSlotTypeVersion", Method: http.MethodPost, Path: "/slottypes/{name}/versions"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteSlotTypeInput struct {
	Name *string `location:"uri" locationName:"name" json:"-" validate:"required"`
}

type DeleteSlotTypeOutput struct {
	transport.Metadata
}

func (c *Client) DeleteSlotType(ctx context.Context, in *DeleteSlotTypeInput) (*DeleteSlotTypeOutput, error) {
	out := new(DeleteSlotTypeOutput)
	op := restjson.Operation{Name: "DeleteSlotType", Method: http.MethodDelete, Path: "/slottypes/{name}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteSlotTypeVersionInput struct {
	Name    *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	Version *string `location:"uri" locationName:"version" json:"-" validate:"required"`
}

type DeleteSlotTypeVersionOutput struct {
	transport.Metadata
}

// DeleteSlotTypeVersion deletes one numbered version. The service path uses
// the singular "version" segment.
func (c *Client) DeleteSlotTypeVersion(ctx context.Context, in *DeleteSlotTypeVersionInput) (*DeleteSlotTypeVersionOutput, error) {
	out := new(DeleteSlotTypeVersionOutput)
	op := restjson.Operation{Name: "DeleteSlotTypeVersion", Method: http.MethodDelete, Path: "/slottypes/{name}/version/{version}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetSlotTypeInput struct {
	Name    *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	Version *string `location:"uri" locationName:"version" json:"-" validate:"required"`
}

type GetSlotTypeOutput struct {
	transport.Metadata

	Name                   *string                    `json:"name"`
	Description            *string                    `json:"description"`
	EnumerationValues      []EnumerationValue         `json:"enumerationValues"`
	LastUpdatedDate        *time.Time                 `json:"lastUpdatedDate"`
	CreatedDate            *time.Time                 `json:"createdDate"`
	Version                *string                    `json:"version"`
	Checksum               *string                    `json:"checksum"`
	ValueSelectionStrategy SlotValueSelectionStrategy `json:"valueSelectionStrategy"`
}

func (c *Client) GetSlotType(ctx context.Context, in *GetSlotTypeInput) (*GetSlotTypeOutput, error) {
	out := new(GetSlotTypeOutput)
	op := restjson.Operation{Name: "GetSlotType", Method: http.MethodGet, Path: "/slottypes/{name}/versions/{version}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetSlotTypeVersionsInput struct {
	Name       *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	NextToken  *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults *int32  `location:"querystring" locationName:"maxResults" json:"-"`
}

type GetSlotTypeVersionsOutput struct {
	transport.Metadata

	SlotTypes []SlotTypeMetadata `json:"slotTypes"`
	NextToken *string            `json:"nextToken"`
}

func (c *Client) GetSlotTypeVersions(ctx context.Context, in *GetSlotTypeVersionsInput) (*GetSlotTypeVersionsOutput, error) {
	out := new(GetSlotTypeVersionsOutput)
	op := restjson.Operation{Name: "GetSlotTypeVersions", Method: http.MethodGet, Path: "/slottypes/{name}/versions/"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetSlotTypesInput struct {
	NextToken    *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults   *int32  `location:"querystring" locationName:"maxResults" json:"-"`
	NameContains *string `location:"querystring" locationName:"nameContains" json:"-"`
}

type GetSlotTypesOutput struct {
	transport.Metadata

	SlotTypes []SlotTypeMetadata `json:"slotTypes"`
	NextToken *string            `json:"nextToken"`
}

func (c *Client) GetSlotTypes(ctx context.Context, in *GetSlotTypesInput) (*GetSlotTypesOutput, error) {
	out := new(GetSlotTypesOutput)
	op := restjson.Operation{Name: "GetSlotTypes", Method: http.MethodGet, Path: "/slottypes/"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type PutSlotTypeInput struct {
	Name *string `location:"uri" locationName:"name" json:"-" validate:"required"`

	Description            *string                    `json:"description"`
	EnumerationValues      []EnumerationValue         `json:"enumerationValues" validate:"omitempty,dive"`
	Checksum               *string                    `json:"checksum"`
	ValueSelectionStrategy SlotValueSelectionStrategy `json:"valueSelectionStrategy"`
	CreateVersion          *bool                      `json:"createVersion"`
}

type PutSlotTypeOutput struct {
	transport.Metadata

	Name                   *string                    `json:"name"`
	Description            *string                    `json:"description"`
	EnumerationValues      []EnumerationValue         `json:"enumerationValues"`
	LastUpdatedDate        *time.Time                 `json:"lastUpdatedDate"`
	CreatedDate            *time.Time                 `json:"createdDate"`
	Version                *string                    `json:"version"`
	Checksum               *string                    `json:"checksum"`
	ValueSelectionStrategy SlotValueSelectionStrategy `json:"valueSelectionStrategy"`
	CreateVersion          *bool                      `json:"createVersion"`
}

func (c *Client) PutSlotType(ctx context.Context, in *PutSlotTypeInput) (*PutSlotTypeOutput, error) {
	out := new(PutSlotTypeOutput)
	op := restjson.Operation{Name: "PutSlotType", Method: http.MethodPut, Path: "/slottypes/{name}/versions/$LATEST"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetBuiltinSlotTypesInput struct {
	Locale            Locale  `location:"querystring" locationName:"locale" json:"-"`
	SignatureContains *string `location:"querystring" locationName:"signatureContains" json:"-"`
	NextToken         *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults        *int32  `location:"querystring" locationName:"maxResults" json:"-"`
}

type GetBuiltinSlotTypesOutput struct {
	transport.Metadata

	SlotTypes []BuiltinSlotTypeMetadata `json:"slotTypes"`
	NextToken *string                   `json:"nextToken"`
}

func (c *Client) GetBuiltinSlotTypes(ctx context.Context, in *GetBuiltinSlotTypesInput) (*GetBuiltinSlotTypesOutput, error) {
	out := new(GetBuiltinSlotTypesOutput)
	op := restjson.Operation{Name: "GetBuiltinSlotTypes", Method: http.MethodGet, Path: "/builtins/slottypes/"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
