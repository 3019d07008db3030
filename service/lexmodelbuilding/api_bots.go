package lexmodelbuilding

import (
	"context"
	"net/http"
	"time"

	"github.com/Laisky/cloudsdk/protocol/restjson"
	"github.com/Laisky/cloudsdk/transport"
)

type CreateBotVersionInput struct {
	Name *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	// Checksum must match $LATEST, otherwise PreconditionFailedException.
	Checksum *string `json:"checksum"`
}

type CreateBotVersionOutput struct {
	transport.Metadata

	Name                    *string    `json:"name"`
	Description             *string    `json:"description"`
	Intents                 []Intent   `json:"intents"`
	ClarificationPrompt     *Prompt    `json:"clarificationPrompt"`
	AbortStatement          *Statement `json:"abortStatement"`
	Status                  Status     `json:"status"`
	FailureReason           *string    `json:"failureReason"`
	LastUpdatedDate         *time.Time `json:"lastUpdatedDate"`
	CreatedDate             *time.Time `json:"createdDate"`
	IdleSessionTTLInSeconds *int32     `json:"idleSessionTTLInSeconds"`
	VoiceID                 *string    `json:"voiceId"`
	Checksum                *string    `json:"checksum"`
	Version                 *string    `json:"version"`
	Locale                  Locale     `json:"locale"`
	ChildDirected           *bool      `json:"childDirected"`
}

// CreateBotVersion snapshots $LATEST as a new numbered version.
func (c *Client) CreateBotVersion(ctx context.Context, in *CreateBotVersionInput) (*CreateBotVersionOutput, error) {
	out := new(CreateBotVersionOutput)
	op := restjson.Operation{Name: "CreateBotVersion", Method: http.MethodPost, Path: "/bots/{name}/versions"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteBotInput struct {
	Name *string `location:"uri" locationName:"name" json:"-" validate:"required"`
}

type DeleteBotOutput struct {
	transport.Metadata
}

// DeleteBot removes every version of a bot. It fails with
// ResourceInUseException while an alias points at the bot.
func (c *Client) DeleteBot(ctx context.Context, in *DeleteBotInput) (*DeleteBotOutput, error) {
	out := new(DeleteBotOutput)
	op := restjson.Operation{Name: "DeleteBot", Method: http.MethodDelete, Path: "/bots/{name}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteBotVersionInput struct {
	Name *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	// Version cannot be $LATEST; use DeleteBot for that.
	Version *string `location:"uri" locationName:"version" json:"-" validate:"required"`
}

type DeleteBotVersionOutput struct {
	transport.Metadata
}

func (c *Client) DeleteBotVersion(ctx context.Context, in *DeleteBotVersionInput) (*DeleteBotVersionOutput, error) {
	out := new(DeleteBotVersionOutput)
	op := restjson.Operation{Name: "DeleteBotVersion", Method: http.MethodDelete, Path: "/bots/{name}/versions/{version}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetBotInput struct {
	Name *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	// VersionOrAlias is a version number, $LATEST or an alias name.
	VersionOrAlias *string `location:"uri" locationName:"versionoralias" json:"-" validate:"required"`
}

type GetBotOutput struct {
	transport.Metadata

	Name                    *string    `json:"name"`
	Description             *string    `json:"description"`
	Intents                 []Intent   `json:"intents"`
	ClarificationPrompt     *Prompt    `json:"clarificationPrompt"`
	AbortStatement          *Statement `json:"abortStatement"`
	Status                  Status     `json:"status"`
	FailureReason           *string    `json:"failureReason"`
	LastUpdatedDate         *time.Time `json:"lastUpdatedDate"`
	CreatedDate             *time.Time `json:"createdDate"`
	IdleSessionTTLInSeconds *int32     `json:"idleSessionTTLInSeconds"`
	VoiceID                 *string    `json:"voiceId"`
	Checksum                *string    `json:"checksum"`
	Version                 *string    `json:"version"`
	Locale                  Locale     `json:"locale"`
	ChildDirected           *bool      `json:"childDirected"`
}

func (c *Client) GetBot(ctx context.Context, in *GetBotInput) (*GetBotOutput, error) {
	out := new(GetBotOutput)
	op := restjson.Operation{Name: "GetBot", Method: http.MethodGet, Path: "/bots/{name}/versions/{versionoralias}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetBotVersionsInput struct {
	Name       *string `location:"uri" locationName:"name" json:"-" validate:"required"`
	NextToken  *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults *int32  `location:"querystring" locationName:"maxResults" json:"-"`
}

type GetBotVersionsOutput struct {
	transport.Metadata

	Bots      []BotMetadata `json:"bots"`
	NextToken *string       `json:"nextToken"`
}

func (c *Client) GetBotVersions(ctx context.Context, in *GetBotVersionsInput) (*GetBotVersionsOutput, error) {
	out := new(GetBotVersionsOutput)
	op := restjson.Operation{Name: "GetBotVersions", Method: http.MethodGet, Path: "/bots/{name}/versions/"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetBotsInput struct {
	NextToken    *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults   *int32  `location:"querystring" locationName:"maxResults" json:"-"`
	NameContains *string `location:"querystring" locationName:"nameContains" json:"-"`
}

type GetBotsOutput struct {
	transport.Metadata

	Bots      []BotMetadata `json:"bots"`
	NextToken *string       `json:"nextToken"`
}

// GetBots lists the $LATEST version of every bot.
func (c *Client) GetBots(ctx context.Context, in *GetBotsInput) (*GetBotsOutput, error) {
	out := new(GetBotsOutput)
	op := restjson.Operation{Name: "GetBots", Method: http.MethodGet, Path: "/bots/"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type PutBotInput struct {
	Name *string `location:"uri" locationName:"name" json:"-" validate:"required"`

	Description             *string    `json:"description"`
	Intents                 []Intent   `json:"intents"`
	ClarificationPrompt     *Prompt    `json:"clarificationPrompt"`
	AbortStatement          *Statement `json:"abortStatement"`
	IdleSessionTTLInSeconds *int32     `json:"idleSessionTTLInSeconds"`
	VoiceID                 *string    `json:"voiceId"`
	// Checksum is required when updating an existing bot.
	Checksum        *string         `json:"checksum"`
	ProcessBehavior ProcessBehavior `json:"processBehavior"`
	Locale          Locale          `json:"locale" validate:"required"`
	// ChildDirected must be set explicitly for COPPA compliance.
	ChildDirected *bool `json:"childDirected" validate:"required"`
	CreateVersion *bool `json:"createVersion"`
}

type PutBotOutput struct {
	transport.Metadata

	Name                    *string    `json:"name"`
	Description             *string    `json:"description"`
	Intents                 []Intent   `json:"intents"`
	ClarificationPrompt     *Prompt    `json:"clarificationPrompt"`
	AbortStatement          *Statement `json:"abortStatement"`
	Status                  Status     `json:"status"`
	FailureReason           *string    `json:"failureReason"`
	LastUpdatedDate         *time.Time `json:"lastUpdatedDate"`
	CreatedDate             *time.Time `json:"createdDate"`
	IdleSessionTTLInSeconds *int32     `json:"idleSessionTTLInSeconds"`
	VoiceID                 *string    `json:"voiceId"`
	Checksum                *string    `json:"checksum"`
	Version                 *string    `json:"version"`
	Locale                  Locale     `json:"locale"`
	ChildDirected           *bool      `json:"childDirected"`
	CreateVersion           *bool      `json:"createVersion"`
}

// PutBot creates or updates the $LATEST version of a bot.
func (c *Client) PutBot(ctx context.Context, in *PutBotInput) (*PutBotOutput, error) {
	out := new(PutBotOutput)
	op := restjson.Operation{Name: "PutBot", Method: http.MethodPut, Path: "/bots/{name}/versions/$LATEST"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteUtterancesInput struct {
	BotName *string `location:"uri" locationName:"botName" json:"-" validate:"required"`
	UserID  *string `location:"uri" locationName:"userId" json:"-" validate:"required"`
}

type DeleteUtterancesOutput struct {
	transport.Metadata
}

// DeleteUtterances removes the stored utterances of one user.
func (c *Client) DeleteUtterances(ctx context.Context, in *DeleteUtterancesInput) (*DeleteUtterancesOutput, error) {
	out := new(DeleteUtterancesOutput)
	op := restjson.Operation{Name: "DeleteUtterances", Method: http.MethodDelete, Path: "/bots/{botName}/utterances/{userId}"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetUtterancesViewInput struct {
	BotName *string `location:"uri" locationName:"botname" json:"-" validate:"required"`
	// BotVersions holds up to five versions.
	BotVersions []string   `location:"querystring" locationName:"bot_versions" json:"-" validate:"required,min=1,max=5"`
	StatusType  StatusType `location:"querystring" locationName:"status_type" json:"-" validate:"required"`
}

type GetUtterancesViewOutput struct {
	transport.Metadata

	BotName    *string         `json:"botName"`
	Utterances []UtteranceList `json:"utterances"`
}

// GetUtterancesView aggregates utterances over the last 15 days.
func (c *Client) GetUtterancesView(ctx context.Context, in *GetUtterancesViewInput) (*GetUtterancesViewOutput, error) {
	out := new(GetUtterancesViewOutput)
	op := restjson.Operation{Name: "GetUtterancesView", Method: http.MethodGet, Path: "/bots/{botname}/utterances?view=aggregation"}
	if err := c.invoke(ctx, op, in, out); err != nil {
		return nil, err
	}
	return out, nil
}
