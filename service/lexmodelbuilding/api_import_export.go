package lexmodelbuilding

import (
	"context"
	"net/http"
	"time"

	"github.com/Laisky/cloudsdk/protocol/restjson"
	"github.com/Laisky/cloudsdk/transport"
)

type GetExportInput struct {
	Name         *string      `location:"querystring" locationName:"name" json:"-" validate:"required"`
	Version      *string      `location:"querystring" locationName:"version" json:"-" validate:"required"`
	ResourceType ResourceType `location:"querystring" locationName:"resourceType" json:"-" validate:"required"`
	ExportType   ExportType   `location:"querystring" locationName:"exportType" json:"-" validate:"required"`
}

type GetExportOutput struct {
	transport.Metadata

	Name          *string      `json:"name"`
	Version       *string      `json:"version"`
	ResourceType  ResourceType `json:"resourceType"`
	ExportType    ExportType   `json:"exportType"`
	ExportStatus  ExportStatus `json:"exportStatus"`
	FailureReason *string      `json:"failureReason"`
	// URL is a pre-signed S3 link to the zip archive, valid for ten minutes.
	URL *string `json:"url"`
}

// GetExport requests an export; poll it until ExportStatus is READY.
func (c *Client) GetExport(ctx context.Context, in *GetExportInput) (*GetExportOutput, error) {
	out := new(GetExportOutput)
	op := restjson.Operation{Name: "GetExport", Method: http.MethodGet, Path: "/exports/"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetImportInput struct {
	ImportID *string `location:"uri" locationName:"importId" json:"-" validate:"required"`
}

type GetImportOutput struct {
	transport.Metadata

	Name          *string       `json:"name"`
	ResourceType  ResourceType  `json:"resourceType"`
	MergeStrategy MergeStrategy `json:"mergeStrategy"`
	ImportID      *string       `json:"importId"`
	ImportStatus  ImportStatus  `json:"importStatus"`
	FailureReason []string      `json:"failureReason"`
	CreatedDate   *time.Time    `json:"createdDate"`
}

func (c *Client) GetImport(ctx context.Context, in *GetImportInput) (*GetImportOutput, error) {
	out := new(GetImportOutput)
	op := restjson.Operation{Name: "GetImport", Method: http.MethodGet, Path: "/imports/{importId}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type StartImportInput struct {
	// Payload is the zip archive; it is base64 encoded on the wire.
	Payload       []byte        `json:"payload" validate:"required"`
	ResourceType  ResourceType  `json:"resourceType" validate:"required"`
	MergeStrategy MergeStrategy `json:"mergeStrategy" validate:"required"`
}

type StartImportOutput struct {
	transport.Metadata

	Name          *string       `json:"name"`
	ResourceType  ResourceType  `json:"resourceType"`
	MergeStrategy MergeStrategy `json:"mergeStrategy"`
	ImportID      *string       `json:"importId"`
	ImportStatus  ImportStatus  `json:"importStatus"`
	CreatedDate   *time.Time    `json:"createdDate"`
}

func (c *Client) StartImport(ctx context.Context, in *StartImportInput) (*StartImportOutput, error) {
	out := new(StartImportOutput)
	op := restjson.Operation{Name: "StartImport", Method: http.MethodPost, Path: "/imports/"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
