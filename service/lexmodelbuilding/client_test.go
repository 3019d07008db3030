package lexmodelbuilding

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/cloudsdk/apierror"
	"github.com/Laisky/cloudsdk/internal/mockserver"
	"github.com/Laisky/cloudsdk/protocol/restjson"
)

func newTestClient(t *testing.T) (*Client, *mockserver.Server) {
	t.Helper()
	srv := mockserver.New()
	t.Cleanup(srv.Close)

	c, err := New(Options{
		Region:       "us-east-1",
		Credentials:  credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
		HTTPClient:   srv.Client(),
		BaseEndpoint: aws.String(srv.URL),
		Retryer:      aws.NopRetryer{},
	})
	require.NoError(t, err)
	return c, srv
}

func TestPutBot(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Expect(http.MethodPut, "/bots/OrderFlowers/versions/$LATEST", http.StatusOK, `{
		"name": "OrderFlowers",
		"status": "BUILDING",
		"locale": "en-US",
		"childDirected": false,
		"checksum": "abc",
		"version": "$LATEST",
		"createdDate": 1.5e9,
		"intents": [{"intentName": "OrderFlowers", "intentVersion": "1"}],
		"someFutureMember": {"ignored": true}
	}`)

	out, err := c.PutBot(context.Background(), &PutBotInput{
		Name:          aws.String("OrderFlowers"),
		Description:   aws.String("orders flowers"),
		Intents:       []Intent{{IntentName: aws.String("OrderFlowers"), IntentVersion: aws.String("1")}},
		Locale:        LocaleEnUS,
		ChildDirected: aws.Bool(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "OrderFlowers", aws.ToString(out.Name))
	assert.Equal(t, StatusBuilding, out.Status)
	assert.Equal(t, LocaleEnUS, out.Locale)
	require.NotNil(t, out.ChildDirected)
	assert.False(t, *out.ChildDirected)
	require.NotNil(t, out.CreatedDate)
	assert.True(t, out.CreatedDate.Equal(time.Unix(1500000000, 0)))
	require.Len(t, out.Intents, 1)
	assert.Nil(t, out.AbortStatement)
	assert.Nil(t, out.CreateVersion)
	assert.NotEmpty(t, out.RequestID)

	reqs := srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, restjson.ContentType, reqs[0].Header.Get("Content-Type"))
	assert.JSONEq(t, `{
		"description": "orders flowers",
		"intents": [{"intentName": "OrderFlowers", "intentVersion": "1"}],
		"locale": "en-US",
		"childDirected": false
	}`, string(reqs[0].Body))
	assert.NotContains(t, string(reqs[0].Body), `"name"`)
	assert.Contains(t, reqs[0].Header.Get("Authorization"), "/us-east-1/lex/aws4_request")
}

func TestURIAndQueryBinding(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()

	t.Run("escaped uri segment", func(t *testing.T) {
		srv.Reset()
		srv.Expect(http.MethodGet, "/bots/my%20bot/versions/prod", http.StatusOK, `{"name":"my bot"}`)

		out, err := c.GetBot(ctx, &GetBotInput{Name: aws.String("my bot"), VersionOrAlias: aws.String("prod")})
		require.NoError(t, err)
		assert.Equal(t, "my bot", aws.ToString(out.Name))
	})

	t.Run("list query", func(t *testing.T) {
		srv.Reset()
		srv.Expect(http.MethodGet, "/bots/OrderFlowers/aliases/", http.StatusOK,
			`{"BotAliases":[{"name":"prod","botVersion":"3"}],"nextToken":"t2"}`)

		out, err := c.GetBotAliases(ctx, &GetBotAliasesInput{
			BotName:      aws.String("OrderFlowers"),
			MaxResults:   aws.Int32(5),
			NameContains: aws.String("pr"),
		})
		require.NoError(t, err)
		require.Len(t, out.BotAliases, 1)
		assert.Equal(t, "3", aws.ToString(out.BotAliases[0].BotVersion))
		assert.Equal(t, "t2", aws.ToString(out.NextToken))

		q := srv.Requests()[0].RawQuery
		assert.Contains(t, q, "maxResults=5")
		assert.Contains(t, q, "nameContains=pr")
		assert.NotContains(t, q, "nextToken")
		assert.Empty(t, srv.Requests()[0].Body)
	})

	t.Run("fixed and repeated query", func(t *testing.T) {
		srv.Reset()
		srv.Expect(http.MethodGet, "/bots/OrderFlowers/utterances", http.StatusOK, `{
			"botName": "OrderFlowers",
			"utterances": [{"botVersion": "1", "utterances": [{"utteranceString": "roses", "count": 4}]}]
		}`)

		out, err := c.GetUtterancesView(ctx, &GetUtterancesViewInput{
			BotName:     aws.String("OrderFlowers"),
			BotVersions: []string{"1", "2"},
			StatusType:  StatusTypeDetected,
		})
		require.NoError(t, err)
		require.Len(t, out.Utterances, 1)
		assert.Equal(t, int32(4), aws.ToInt32(out.Utterances[0].Utterances[0].Count))

		q := srv.Requests()[0].RawQuery
		assert.Contains(t, q, "view=aggregation")
		assert.Contains(t, q, "bot_versions=1&bot_versions=2")
		assert.Contains(t, q, "status_type=Detected")
	})

	t.Run("query only input", func(t *testing.T) {
		srv.Reset()
		srv.Expect(http.MethodGet, "/exports/", http.StatusOK,
			`{"name":"OrderFlowers","exportStatus":"READY","url":"https://example.com/x.zip"}`)

		out, err := c.GetExport(ctx, &GetExportInput{
			Name:         aws.String("OrderFlowers"),
			Version:      aws.String("1"),
			ResourceType: ResourceTypeBot,
			ExportType:   ExportTypeLex,
		})
		require.NoError(t, err)
		assert.Equal(t, ExportStatusReady, out.ExportStatus)
		assert.Contains(t, srv.Requests()[0].RawQuery, "exportType=LEX")
		assert.Contains(t, srv.Requests()[0].RawQuery, "resourceType=BOT")
	})

	t.Run("blob body", func(t *testing.T) {
		srv.Reset()
		srv.Expect(http.MethodPost, "/imports/", http.StatusCreated,
			`{"importId":"imp-1","importStatus":"IN_PROGRESS"}`)

		out, err := c.StartImport(ctx, &StartImportInput{
			Payload:       []byte("zip"),
			ResourceType:  ResourceTypeBot,
			MergeStrategy: MergeStrategyFailOnConflict,
		})
		require.NoError(t, err)
		assert.Equal(t, "imp-1", aws.ToString(out.ImportID))
		assert.JSONEq(t, `{"payload":"emlw","resourceType":"BOT","mergeStrategy":"FAIL_ON_CONFLICT"}`,
			string(srv.Requests()[0].Body))
	})

	t.Run("delete has empty result", func(t *testing.T) {
		srv.Reset()
		srv.Expect(http.MethodDelete, "/slottypes/Flowers/version/2", http.StatusNoContent, "")

		out, err := c.DeleteSlotTypeVersion(ctx, &DeleteSlotTypeVersionInput{
			Name:    aws.String("Flowers"),
			Version: aws.String("2"),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, out.RequestID)
	})
}

func TestTypedErrors(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		srv.Reset()
		srv.Expect(http.MethodGet, "/intents/Missing/versions/1", http.StatusNotFound,
			`{"message":"intent Missing not found"}`).
			WithHeader("X-Amzn-Errortype", "NotFoundException:http://internal.amazon.com/coral/com.amazonaws.lex/")

		_, err := c.GetIntent(ctx, &GetIntentInput{Name: aws.String("Missing"), Version: aws.String("1")})
		var nf *NotFoundException
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "intent Missing not found", nf.ErrorMessage())
		assert.Equal(t, smithy.FaultClient, nf.ErrorFault())

		var opErr *smithy.OperationError
		require.True(t, errors.As(err, &opErr))
		assert.Equal(t, ServiceID, opErr.Service())
		assert.Equal(t, "GetIntent", opErr.Operation())
	})

	t.Run("limit exceeded carries retry after", func(t *testing.T) {
		srv.Reset()
		srv.Expect(http.MethodGet, "/bots/", http.StatusTooManyRequests, `{"message":"slow down"}`).
			WithHeader("X-Amzn-Errortype", "LimitExceededException").
			WithHeader("Retry-After", "30")

		_, err := c.GetBots(ctx, &GetBotsInput{})
		var limit *LimitExceededException
		require.True(t, errors.As(err, &limit))
		assert.Equal(t, "30", aws.ToString(limit.RetryAfterSeconds))
		assert.Equal(t, http.StatusTooManyRequests, limit.HTTPStatusCode())
	})

	t.Run("resource in use carries reference", func(t *testing.T) {
		srv.Reset()
		srv.Expect(http.MethodDelete, "/intents/OrderFlowers", http.StatusBadRequest, `{
			"__type": "ResourceInUseException",
			"referenceType": "Bot",
			"exampleReference": {"name": "OrderFlowersBot", "version": "2"}
		}`)

		_, err := c.DeleteIntent(ctx, &DeleteIntentInput{Name: aws.String("OrderFlowers")})
		var inUse *ResourceInUseException
		require.True(t, errors.As(err, &inUse))
		assert.Equal(t, ReferenceTypeBot, inUse.ReferenceType)
		require.NotNil(t, inUse.ExampleReference)
		assert.Equal(t, "OrderFlowersBot", aws.ToString(inUse.ExampleReference.Name))
	})

	t.Run("precondition", func(t *testing.T) {
		srv.Reset()
		srv.Expect(http.MethodPost, "/slottypes/Flowers/versions", http.StatusPreconditionFailed,
			`{"code":"PreconditionFailedException","message":"checksum mismatch"}`)

		_, err := c.CreateSlotTypeVersion(ctx, &CreateSlotTypeVersionInput{
			Name:     aws.String("Flowers"),
			Checksum: aws.String("stale"),
		})
		var pre *PreconditionFailedException
		require.True(t, errors.As(err, &pre))
	})

	t.Run("unknown code stays generic", func(t *testing.T) {
		srv.Reset()
		srv.Expect(http.MethodGet, "/imports/imp-1", http.StatusServiceUnavailable, `oops`)

		_, err := c.GetImport(ctx, &GetImportInput{ImportID: aws.String("imp-1")})
		var svcErr *apierror.ServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, smithy.FaultServer, svcErr.Fault)
		assert.Equal(t, "oops", svcErr.Message)
	})
}

func TestValidationFailsBeforeSending(t *testing.T) {
	c, srv := newTestClient(t)
	ctx := context.Background()

	_, err := c.PutBot(ctx, &PutBotInput{Name: aws.String("b")})
	var perr *apierror.InvalidParamsError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Len())

	_, err = c.PutIntent(ctx, &PutIntentInput{
		Name:  aws.String("i"),
		Slots: []Slot{{Name: aws.String("color")}},
	})
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Len())

	_, err = c.GetUtterancesView(ctx, &GetUtterancesViewInput{
		BotName:     aws.String("b"),
		BotVersions: []string{"1", "2", "3", "4", "5", "6"},
		StatusType:  StatusTypeMissed,
	})
	require.True(t, errors.As(err, &perr))

	_, err = c.DeleteBot(ctx, nil)
	require.True(t, errors.As(err, &perr))

	assert.Empty(t, srv.Requests())
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, []string{
		"BadRequestException",
		"ConflictException",
		"InternalFailureException",
		"LimitExceededException",
		"NotFoundException",
		"PreconditionFailedException",
		"ResourceInUseException",
	}, ErrorCodes())
}
