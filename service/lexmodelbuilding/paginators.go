package lexmodelbuilding

import (
	"context"

	"github.com/Laisky/errors/v2"
	"github.com/jinzhu/copier"
)

// PaginatorOptions tunes a paginator.
type PaginatorOptions struct {
	// Limit is sent as maxResults on every page when positive.
	Limit int32
	// StopOnDuplicateToken ends pagination when the service returns the token
	// it was just given.
	StopOnDuplicateToken bool
}

// Paginator walks the pages of a nextToken-paginated Get operation. The
// caller's input is copied once and never modified.
type Paginator[I, O any] struct {
	options    PaginatorOptions
	fetch      func(context.Context, *I) (*O, error)
	inputToken func(*I) **string
	token      func(*O) *string

	params    *I
	next      *string
	firstPage bool
}

func newPaginator[I, O any](params *I, optFns []func(*PaginatorOptions),
	fetch func(context.Context, *I) (*O, error),
	inputToken func(*I) **string, setLimit func(*I, *int32), token func(*O) *string) *Paginator[I, O] {
	opts := PaginatorOptions{StopOnDuplicateToken: true}
	for _, fn := range optFns {
		fn(&opts)
	}

	cloned := new(I)
	if params != nil {
		if err := copier.Copy(cloned, params); err != nil {
			// unreachable: source and destination share a type
			panic(err)
		}
	}
	if opts.Limit > 0 {
		limit := opts.Limit
		setLimit(cloned, &limit)
	}
	return &Paginator[I, O]{
		options:    opts,
		fetch:      fetch,
		inputToken: inputToken,
		token:      token,
		params:     cloned,
		firstPage:  true,
	}
}

// HasMorePages reports whether NextPage can be called.
func (p *Paginator[I, O]) HasMorePages() bool {
	return p.firstPage || (p.next != nil && *p.next != "")
}

// NextPage fetches the next page.
func (p *Paginator[I, O]) NextPage(ctx context.Context) (*O, error) {
	if !p.HasMorePages() {
		return nil, errors.New("no more pages available")
	}

	if !p.firstPage {
		*p.inputToken(p.params) = p.next
	}
	out, err := p.fetch(ctx, p.params)
	if err != nil {
		return nil, err
	}
	p.firstPage = false

	prev := *p.inputToken(p.params)
	p.next = p.token(out)
	if p.options.StopOnDuplicateToken && prev != nil && p.next != nil && *prev == *p.next {
		p.next = nil
	}
	return out, nil
}

type GetBotsAPIClient interface {
	GetBots(context.Context, *GetBotsInput) (*GetBotsOutput, error)
}

func NewGetBotsPaginator(client GetBotsAPIClient, params *GetBotsInput, optFns ...func(*PaginatorOptions)) *Paginator[GetBotsInput, GetBotsOutput] {
	return newPaginator(params, optFns, client.GetBots,
		func(in *GetBotsInput) **string { return &in.NextToken },
		func(in *GetBotsInput, n *int32) { in.MaxResults = n },
		func(out *GetBotsOutput) *string { return out.NextToken })
}

type GetBotVersionsAPIClient interface {
	GetBotVersions(context.Context, *GetBotVersionsInput) (*GetBotVersionsOutput, error)
}

func NewGetBotVersionsPaginator(client GetBotVersionsAPIClient, params *GetBotVersionsInput, optFns ...func(*PaginatorOptions)) *Paginator[GetBotVersionsInput, GetBotVersionsOutput] {
	return newPaginator(params, optFns, client.GetBotVersions,
		func(in *GetBotVersionsInput) **string { return &in.NextToken },
		func(in *GetBotVersionsInput, n *int32) { in.MaxResults = n },
		func(out *GetBotVersionsOutput) *string { return out.NextToken })
}

type GetBotAliasesAPIClient interface {
	GetBotAliases(context.Context, *GetBotAliasesInput) (*GetBotAliasesOutput, error)
}

func NewGetBotAliasesPaginator(client GetBotAliasesAPIClient, params *GetBotAliasesInput, optFns ...func(*PaginatorOptions)) *Paginator[GetBotAliasesInput, GetBotAliasesOutput] {
	return newPaginator(params, optFns, client.GetBotAliases,
		func(in *GetBotAliasesInput) **string { return &in.NextToken },
		func(in *GetBotAliasesInput, n *int32) { in.MaxResults = n },
		func(out *GetBotAliasesOutput) *string { return out.NextToken })
}

type GetBotChannelAssociationsAPIClient interface {
	GetBotChannelAssociations(context.Context, *GetBotChannelAssociationsInput) (*GetBotChannelAssociationsOutput, error)
}

func NewGetBotChannelAssociationsPaginator(client GetBotChannelAssociationsAPIClient, params *GetBotChannelAssociationsInput,
	optFns ...func(*PaginatorOptions)) *Paginator[GetBotChannelAssociationsInput, GetBotChannelAssociationsOutput] {
	return newPaginator(params, optFns, client.GetBotChannelAssociations,
		func(in *GetBotChannelAssociationsInput) **string { return &in.NextToken },
		func(in *GetBotChannelAssociationsInput, n *int32) { in.MaxResults = n },
		func(out *GetBotChannelAssociationsOutput) *string { return out.NextToken })
}

type GetIntentsAPIClient interface {
	GetIntents(context.Context, *GetIntentsInput) (*GetIntentsOutput, error)
}

func NewGetIntentsPaginator(client GetIntentsAPIClient, params *GetIntentsInput, optFns ...func(*PaginatorOptions)) *Paginator[GetIntentsInput, GetIntentsOutput] {
	return newPaginator(params, optFns, client.GetIntents,
		func(in *GetIntentsInput) **string { return &in.NextToken },
		func(in *GetIntentsInput, n *int32) { in.MaxResults = n },
		func(out *GetIntentsOutput) *string { return out.NextToken })
}

type GetIntentVersionsAPIClient interface {
	GetIntentVersions(context.Context, *GetIntentVersionsInput) (*GetIntentVersionsOutput, error)
}

func NewGetIntentVersionsPaginator(client GetIntentVersionsAPIClient, params *GetIntentVersionsInput, optFns ...func(*PaginatorOptions)) *Paginator[GetIntentVersionsInput, GetIntentVersionsOutput] {
	return newPaginator(params, optFns, client.GetIntentVersions,
		func(in *GetIntentVersionsInput) **string { return &in.NextToken },
		func(in *GetIntentVersionsInput, n *int32) { in.MaxResults = n },
		func(out *GetIntentVersionsOutput) *string { return out.NextToken })
}

type GetSlotTypesAPIClient interface {
	GetSlotTypes(context.Context, *GetSlotTypesInput) (*GetSlotTypesOutput, error)
}

func NewGetSlotTypesPaginator(client GetSlotTypesAPIClient, params *GetSlotTypesInput, optFns ...func(*PaginatorOptions)) *Paginator[GetSlotTypesInput, GetSlotTypesOutput] {
	return newPaginator(params, optFns, client.GetSlotTypes,
		func(in *GetSlotTypesInput) **string { return &in.NextToken },
		func(in *GetSlotTypesInput, n *int32) { in.MaxResults = n },
		func(out *GetSlotTypesOutput) *string { return out.NextToken })
}

type GetSlotTypeVersionsAPIClient interface {
	GetSlotTypeVersions(context.Context, *GetSlotTypeVersionsInput) (*GetSlotTypeVersionsOutput, error)
}

func NewGetSlotTypeVersionsPaginator(client GetSlotTypeVersionsAPIClient, params *GetSlotTypeVersionsInput,
	optFns ...func(*PaginatorOptions)) *Paginator[GetSlotTypeVersionsInput, GetSlotTypeVersionsOutput] {
	return newPaginator(params, optFns, client.GetSlotTypeVersions,
		func(in *GetSlotTypeVersionsInput) **string { return &in.NextToken },
		func(in *GetSlotTypeVersionsInput, n *int32) { in.MaxResults = n },
		func(out *GetSlotTypeVersionsOutput) *string { return out.NextToken })
}

type GetBuiltinIntentsAPIClient interface {
	GetBuiltinIntents(context.Context, *GetBuiltinIntentsInput) (*GetBuiltinIntentsOutput, error)
}

func NewGetBuiltinIntentsPaginator(client GetBuiltinIntentsAPIClient, params *GetBuiltinIntentsInput, optFns ...func(*PaginatorOptions)) *Paginator[GetBuiltinIntentsInput, GetBuiltinIntentsOutput] {
	return newPaginator(params, optFns, client.GetBuiltinIntents,
		func(in *GetBuiltinIntentsInput) **string { return &in.NextToken },
		func(in *GetBuiltinIntentsInput, n *int32) { in.MaxResults = n },
		func(out *GetBuiltinIntentsOutput) *string { return out.NextToken })
}

type GetBuiltinSlotTypesAPIClient interface {
	GetBuiltinSlotTypes(context.Context, *GetBuiltinSlotTypesInput) (*GetBuiltinSlotTypesOutput, error)
}

func NewGetBuiltinSlotTypesPaginator(client GetBuiltinSlotTypesAPIClient, params *GetBuiltinSlotTypesInput,
	optFns ...func(*PaginatorOptions)) *Paginator[GetBuiltinSlotTypesInput, GetBuiltinSlotTypesOutput] {
	return newPaginator(params, optFns, client.GetBuiltinSlotTypes,
		func(in *GetBuiltinSlotTypesInput) **string { return &in.NextToken },
		func(in *GetBuiltinSlotTypesInput, n *int32) { in.MaxResults = n },
		func(out *GetBuiltinSlotTypesOutput) *string { return out.NextToken })
}
