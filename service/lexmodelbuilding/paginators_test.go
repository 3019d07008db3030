package lexmodelbuilding

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBotsPaginator(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Expect(http.MethodGet, "/bots/", http.StatusOK,
		`{"bots":[{"name":"a"},{"name":"b"}],"nextToken":"page-2"}`).Times(1)
	srv.Expect(http.MethodGet, "/bots/", http.StatusOK,
		`{"bots":[{"name":"c"}]}`).Times(1)

	params := &GetBotsInput{}
	p := NewGetBotsPaginator(c, params, func(o *PaginatorOptions) { o.Limit = 2 })

	var names []string
	for p.HasMorePages() {
		page, err := p.NextPage(context.Background())
		require.NoError(t, err)
		for _, b := range page.Bots {
			names = append(names, aws.ToString(b.Name))
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Nil(t, params.NextToken)
	assert.Nil(t, params.MaxResults)

	reqs := srv.Requests()
	require.Len(t, reqs, 2)
	first, err := url.ParseQuery(reqs[0].RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "2", first.Get("maxResults"))
	assert.False(t, first.Has("nextToken"))

	second, err := url.ParseQuery(reqs[1].RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "page-2", second.Get("nextToken"))
	assert.Equal(t, "2", second.Get("maxResults"))
}

type loopingIntents struct{ calls int }

func (l *loopingIntents) GetIntents(context.Context, *GetIntentsInput) (*GetIntentsOutput, error) {
	l.calls++
	return &GetIntentsOutput{NextToken: aws.String("same")}, nil
}

func TestPaginatorDuplicateToken(t *testing.T) {
	client := &loopingIntents{}
	p := NewGetIntentsPaginator(client, nil)
	for p.HasMorePages() {
		_, err := p.NextPage(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 2, client.calls)

	client = &loopingIntents{}
	p = NewGetIntentsPaginator(client, nil, func(o *PaginatorOptions) { o.StopOnDuplicateToken = false })
	for i := 0; i < 5; i++ {
		require.True(t, p.HasMorePages())
		_, err := p.NextPage(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 5, client.calls)
}

func TestPaginatorStopsWhenCallerTokenIsEchoed(t *testing.T) {
	client := &loopingIntents{}
	p := NewGetIntentsPaginator(client, &GetIntentsInput{NextToken: aws.String("same")})
	for p.HasMorePages() {
		_, err := p.NextPage(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 1, client.calls)
}
