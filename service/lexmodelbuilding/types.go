package lexmodelbuilding

import (
	"time"
)

type ChannelStatus string

const (
	ChannelStatusInProgress ChannelStatus = "IN_PROGRESS"
	ChannelStatusCreated    ChannelStatus = "CREATED"
	ChannelStatusFailed     ChannelStatus = "FAILED"
)

type ChannelType string

const (
	ChannelTypeFacebook  ChannelType = "Facebook"
	ChannelTypeSlack     ChannelType = "Slack"
	ChannelTypeTwilioSms ChannelType = "Twilio-Sms"
	ChannelTypeKik       ChannelType = "Kik"
)

// ContentType is the format of a prompt or statement message.
type ContentType string

const (
	ContentTypePlainText     ContentType = "PlainText"
	ContentTypeSsml          ContentType = "SSML"
	ContentTypeCustomPayload ContentType = "CustomPayload"
)

type ExportStatus string

const (
	ExportStatusInProgress ExportStatus = "IN_PROGRESS"
	ExportStatusReady      ExportStatus = "READY"
	ExportStatusFailed     ExportStatus = "FAILED"
)

type ExportType string

const (
	ExportTypeAlexaSkillsKit ExportType = "ALEXA_SKILLS_KIT"
	ExportTypeLex            ExportType = "LEX"
)

type FulfillmentActivityType string

const (
	FulfillmentActivityTypeReturnIntent FulfillmentActivityType = "ReturnIntent"
	FulfillmentActivityTypeCodeHook     FulfillmentActivityType = "CodeHook"
)

type ImportStatus string

const (
	ImportStatusInProgress ImportStatus = "IN_PROGRESS"
	ImportStatusComplete   ImportStatus = "COMPLETE"
	ImportStatusFailed     ImportStatus = "FAILED"
)

type Locale string

const (
	LocaleEnUS Locale = "en-US"
	LocaleEnGB Locale = "en-GB"
	LocaleEnAU Locale = "en-AU"
	LocaleDeDE Locale = "de-DE"
	LocaleEsUS Locale = "es-US"
	LocaleFrFR Locale = "fr-FR"
)

// MergeStrategy decides what StartImport does when the resource already exists.
type MergeStrategy string

const (
	MergeStrategyOverwriteLatest MergeStrategy = "OVERWRITE_LATEST"
	MergeStrategyFailOnConflict  MergeStrategy = "FAIL_ON_CONFLICT"
)

// ProcessBehavior: SAVE stores the bot, BUILD also builds it.
type ProcessBehavior string

const (
	ProcessBehaviorSave  ProcessBehavior = "SAVE"
	ProcessBehaviorBuild ProcessBehavior = "BUILD"
)

type ResourceType string

const (
	ResourceTypeBot      ResourceType = "BOT"
	ResourceTypeIntent   ResourceType = "INTENT"
	ResourceTypeSlotType ResourceType = "SLOT_TYPE"
)

type SlotConstraint string

const (
	SlotConstraintRequired SlotConstraint = "Required"
	SlotConstraintOptional SlotConstraint = "Optional"
)

type SlotValueSelectionStrategy string

const (
	SlotValueSelectionStrategyOriginalValue SlotValueSelectionStrategy = "ORIGINAL_VALUE"
	SlotValueSelectionStrategyTopResolution SlotValueSelectionStrategy = "TOP_RESOLUTION"
)

// Status is the build status of a bot.
type Status string

const (
	StatusBuilding          Status = "BUILDING"
	StatusReady             Status = "READY"
	StatusReadyBasicTesting Status = "READY_BASIC_TESTING"
	StatusFailed            Status = "FAILED"
	StatusNotBuilt          Status = "NOT_BUILT"
)

// StatusType selects recognized (Detected) or unrecognized (Missed) utterances.
type StatusType string

const (
	StatusTypeDetected StatusType = "Detected"
	StatusTypeMissed   StatusType = "Missed"
)

// ReferenceType names the kind of resource that still references the one
// being deleted.
type ReferenceType string

const (
	ReferenceTypeIntent     ReferenceType = "Intent"
	ReferenceTypeBot        ReferenceType = "Bot"
	ReferenceTypeBotAlias   ReferenceType = "BotAlias"
	ReferenceTypeBotChannel ReferenceType = "BotChannel"
)

type Message struct {
	ContentType ContentType `json:"contentType"`
	Content     *string     `json:"content"`
	// GroupNumber groups messages that are sent together.
	GroupNumber *int32 `json:"groupNumber"`
}

type Prompt struct {
	Messages     []Message `json:"messages"`
	MaxAttempts  *int32    `json:"maxAttempts"`
	ResponseCard *string   `json:"responseCard"`
}

type Statement struct {
	Messages     []Message `json:"messages"`
	ResponseCard *string   `json:"responseCard"`
}

// Intent references an intent version used by a bot.
type Intent struct {
	IntentName    *string `json:"intentName"`
	IntentVersion *string `json:"intentVersion"`
}

type BotMetadata struct {
	Name            *string    `json:"name"`
	Description     *string    `json:"description"`
	Status          Status     `json:"status"`
	LastUpdatedDate *time.Time `json:"lastUpdatedDate"`
	CreatedDate     *time.Time `json:"createdDate"`
	Version         *string    `json:"version"`
}

type BotAliasMetadata struct {
	Name            *string    `json:"name"`
	Description     *string    `json:"description"`
	BotVersion      *string    `json:"botVersion"`
	BotName         *string    `json:"botName"`
	LastUpdatedDate *time.Time `json:"lastUpdatedDate"`
	CreatedDate     *time.Time `json:"createdDate"`
	Checksum        *string    `json:"checksum"`
}

// BotChannelAssociation links a bot alias to a messaging platform.
type BotChannelAssociation struct {
	Name             *string           `json:"name"`
	Description      *string           `json:"description"`
	BotAlias         *string           `json:"botAlias"`
	BotName          *string           `json:"botName"`
	CreatedDate      *time.Time        `json:"createdDate"`
	Type             ChannelType       `json:"type"`
	BotConfiguration map[string]string `json:"botConfiguration"`
	Status           ChannelStatus     `json:"status"`
	FailureReason    *string           `json:"failureReason"`
}

type BuiltinIntentMetadata struct {
	Signature        *string  `json:"signature"`
	SupportedLocales []Locale `json:"supportedLocales"`
}

type BuiltinIntentSlot struct {
	Name *string `json:"name"`
}

type BuiltinSlotTypeMetadata struct {
	Signature        *string  `json:"signature"`
	SupportedLocales []Locale `json:"supportedLocales"`
}

// CodeHook is a Lambda function invoked for validation or fulfillment.
type CodeHook struct {
	URI            *string `json:"uri" validate:"required"`
	MessageVersion *string `json:"messageVersion" validate:"required"`
}

type FollowUpPrompt struct {
	Prompt             *Prompt    `json:"prompt"`
	RejectionStatement *Statement `json:"rejectionStatement"`
}

type FulfillmentActivity struct {
	Type     FulfillmentActivityType `json:"type" validate:"required"`
	CodeHook *CodeHook               `json:"codeHook"`
}

type IntentMetadata struct {
	Name            *string    `json:"name"`
	Description     *string    `json:"description"`
	LastUpdatedDate *time.Time `json:"lastUpdatedDate"`
	CreatedDate     *time.Time `json:"createdDate"`
	Version         *string    `json:"version"`
}

type Slot struct {
	Name                   *string        `json:"name" validate:"required"`
	Description            *string        `json:"description"`
	SlotConstraint         SlotConstraint `json:"slotConstraint" validate:"required"`
	SlotType               *string        `json:"slotType"`
	SlotTypeVersion        *string        `json:"slotTypeVersion"`
	ValueElicitationPrompt *Prompt        `json:"valueElicitationPrompt"`
	// Priority orders slot elicitation, lowest first.
	Priority         *int32   `json:"priority"`
	SampleUtterances []string `json:"sampleUtterances"`
	ResponseCard     *string  `json:"responseCard"`
}

type SlotTypeMetadata struct {
	Name            *string    `json:"name"`
	Description     *string    `json:"description"`
	LastUpdatedDate *time.Time `json:"lastUpdatedDate"`
	CreatedDate     *time.Time `json:"createdDate"`
	Version         *string    `json:"version"`
}

type EnumerationValue struct {
	Value    *string  `json:"value" validate:"required"`
	Synonyms []string `json:"synonyms"`
}

type UtteranceData struct {
	UtteranceString  *string    `json:"utteranceString"`
	Count            *int32     `json:"count"`
	DistinctUsers    *int32     `json:"distinctUsers"`
	FirstUtteredDate *time.Time `json:"firstUtteredDate"`
	LastUtteredDate  *time.Time `json:"lastUtteredDate"`
}

type UtteranceList struct {
	BotVersion *string         `json:"botVersion"`
	Utterances []UtteranceData `json:"utterances"`
}

// ResourceReference points at a resource that blocks a delete.
type ResourceReference struct {
	Name    *string `json:"name"`
	Version *string `json:"version"`
}
