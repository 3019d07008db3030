package lexmodelbuilding

import (
	"context"
	"net/http"
	"time"

	"github.com/Laisky/cloudsdk/protocol/restjson"
	"github.com/Laisky/cloudsdk/transport"
)

type DeleteBotAliasInput struct {
	Name    *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	BotName *string `location:"uri" locationName:"botName" json:"-" validate:"required"`
}

type DeleteBotAliasOutput struct {
	transport.Metadata
}

// DeleteBotAlias fails with ResourceInUseException while a channel
// association uses the alias.
func (c *Client) DeleteBotAlias(ctx context.Context, in *DeleteBotAliasInput) (*DeleteBotAliasOutput, error) {
	out := new(DeleteBotAliasOutput)
	op := restjson.Operation{Name: "DeleteBotAlias", Method: http.MethodDelete, Path: "/bots/{botName}/aliases/{name}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetBotAliasInput struct {
	Name    *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	BotName *string `location:"uri" locationName:"botName" json:"-" validate:"required"`
}

type GetBotAliasOutput struct {
	transport.Metadata

	Name            *string    `json:"name"`
	Description     *string    `json:"description"`
	BotVersion      *string    `json:"botVersion"`
	BotName         *string    `json:"botName"`
	LastUpdatedDate *time.Time `json:"lastUpdatedDate"`
	CreatedDate     *time.Time `json:"createdDate"`
	Checksum        *string    `json:"checksum"`
}

func (c *Client) GetBotAlias(ctx context.Context, in *GetBotAliasInput) (*GetBotAliasOutput, error) {
	out := new(GetBotAliasOutput)
	op := restjson.Operation{Name: "GetBotAlias", Method: http.MethodGet, Path: "/bots/{botName}/aliases/{name}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetBotAliasesInput struct {
	BotName      *string `location:"uri" locationName:"botName" json:"-" validate:"required"`
	NextToken    *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults   *int32  `location:"querystring" locationName:"maxResults" json:"-"`
	NameContains *string `location:"querystring" locationName:"nameContains" json:"-"`
}

type GetBotAliasesOutput struct {
	transport.Metadata

	// the service capitalizes this member
	BotAliases []BotAliasMetadata `json:"BotAliases"`
	NextToken  *string            `json:"nextToken"`
}

func (c *Client) GetBotAliases(ctx context.Context, in *GetBotAliasesInput) (*GetBotAliasesOutput, error) {
	out := new(GetBotAliasesOutput)
	op := restjson.Operation{Name: "GetBotAliases", Method: http.MethodGet, Path: "/bots/{botName}/aliases/"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type PutBotAliasInput struct {
	Name    *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	BotName *string `location:"uri" locationName:"botName" json:"-" validate:"required"`

	Description *string `json:"description"`
	BotVersion  *string `json:"botVersion" validate:"required"`
	Checksum    *string `json:"checksum"`
}

type PutBotAliasOutput struct {
	transport.Metadata

	Name            *string    `json:"name"`
	Description     *string    `json:"description"`
	BotVersion      *string    `json:"botVersion"`
	BotName         *string    `json:"botName"`
	LastUpdatedDate *time.Time `json:"lastUpdatedDate"`
	CreatedDate     *time.Time `json:"createdDate"`
	Checksum        *string    `json:"checksum"`
}

// PutBotAlias creates an alias or repoints it at another bot version.
func (c *Client) PutBotAlias(ctx context.Context, in *PutBotAliasInput) (*PutBotAliasOutput, error) {
	out := new(PutBotAliasOutput)
	op := restjson.Operation{Name: "PutBotAlias", Method: http.MethodPut, Path: "/bots/{botName}/aliases/{name}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteBotChannelAssociationInput struct {
	Name     *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	BotName  *string `location:"uri" locationName:"botName" json:"-" validate:"required"`
	BotAlias *string `location:"uri" locationName:"aliasName" json:"-" validate:"required"`
}

type DeleteBotChannelAssociationOutput struct {
	transport.Metadata
}

func (c *Client) DeleteBotChannelAssociation(ctx context.Context, in *DeleteBotChannelAssociationInput) (*DeleteBotChannelAssociationOutput, error) {
	out := new(DeleteBotChannelAssociationOutput)
	op := restjson.Operation{
		Name:   "DeleteBotChannelAssociation",
		Method: http.MethodDelete,
		Path:   "/bots/{botName}/aliases/{aliasName}/channels/{name}",
	}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetBotChannelAssociationInput struct {
	Name     *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	BotName  *string `location:"uri" locationName:"botName" json:"-" validate:"required"`
	BotAlias *string `location:"uri" locationName:"aliasName" json:"-" validate:"required"`
}

type GetBotChannelAssociationOutput struct {
	transport.Metadata

	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	BotAlias    *string     `json:"botAlias"`
	BotName     *string     `json:"botName"`
	CreatedDate *time.Time  `json:"createdDate"`
	Type        ChannelType `json:"type"`
	// BotConfiguration carries platform credentials and is sensitive.
	BotConfiguration map[string]string `json:"botConfiguration"`
	Status           ChannelStatus     `json:"status"`
	FailureReason    *string           `json:"failureReason"`
}

func (c *Client) GetBotChannelAssociation(ctx context.Context, in *GetBotChannelAssociationInput) (*GetBotChannelAssociationOutput, error) {
	out := new(GetBotChannelAssociationOutput)
	op := restjson.Operation{
		Name:   "GetBotChannelAssociation",
		Method: http.MethodGet,
		Path:   "/bots/{botName}/aliases/{aliasName}/channels/{name}",
	}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetBotChannelAssociationsInput struct {
	BotName *string `location:"uri" locationName:"botName" json:"-" validate:"required"`
	// BotAlias may be "-" to list the associations of every alias.
	BotAlias     *string `location:"uri" locationName:"aliasName" json:"-" validate:"required"`
	NextToken    *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults   *int32  `location:"querystring" locationName:"maxResults" json:"-"`
	NameContains *string `location:"querystring" locationName:"nameContains" json:"-"`
}

type GetBotChannelAssociationsOutput struct {
	transport.Metadata

	BotChannelAssociations []BotChannelAssociation `json:"botChannelAssociations"`
	NextToken              *string                 `json:"nextToken"`
}

func (c *Client) GetBotChannelAssociations(ctx context.Context, in *GetBotChannelAssociationsInput) (*GetBotChannelAssociationsOutput, error) {
	out := new(GetBotChannelAssociationsOutput)
	op := restjson.Operation{
		Name:   "GetBotChannelAssociations",
		Method: http.MethodGet,
		Path:   "/bots/{botName}/aliases/{aliasName}/channels/",
	}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
