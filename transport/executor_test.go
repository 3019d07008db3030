package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/cloudsdk/apierror"
	"github.com/Laisky/cloudsdk/common/metrics"
	"github.com/Laisky/cloudsdk/endpoints"
)

// fixedRetryer retries 5xx service errors without delay.
type fixedRetryer struct {
	attempts int
	delay    time.Duration
}

func (r fixedRetryer) IsErrorRetryable(err error) bool {
	var se *apierror.ServiceError
	return errors.As(err, &se) && se.StatusCode >= 500
}
func (r fixedRetryer) MaxAttempts() int { return r.attempts }
func (r fixedRetryer) RetryDelay(int, error) (time.Duration, error) {
	return r.delay, nil
}
func (r fixedRetryer) GetRetryToken(context.Context, error) (func(error) error, error) {
	return func(error) error { return nil }, nil
}
func (r fixedRetryer) GetInitialToken() func(error) error {
	return func(error) error { return nil }
}

var _ aws.Retryer = fixedRetryer{}

func plainDecoder(resp *Response) error {
	return &apierror.ServiceError{
		Code:       apierror.CodeFromStatus(resp.StatusCode),
		Message:    string(resp.Body),
		StatusCode: resp.StatusCode,
		Fault:      apierror.FaultFromStatus(resp.StatusCode),
		RequestID:  resp.RequestID,
	}
}

type recorded struct {
	method string
	path   string
	query  url.Values
	header http.Header
	body   string
}

type fakeService struct {
	mu       sync.Mutex
	requests []recorded
	statuses []int
	calls    atomic.Int32
}

func (f *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recorded{
		method: r.Method,
		path:   r.URL.EscapedPath(),
		query:  r.URL.Query(),
		header: r.Header.Clone(),
		body:   string(body),
	})
	f.mu.Unlock()

	n := int(f.calls.Add(1))
	status := http.StatusOK
	if n <= len(f.statuses) {
		status = f.statuses[n-1]
	}
	w.Header().Set("X-Amzn-Requestid", "rid-"+string(rune('0'+n)))
	w.WriteHeader(status)
	_, _ = w.Write([]byte("payload"))
}

func newTestExecutor(t *testing.T, srv *httptest.Server, retryer aws.Retryer) (*Executor, *metrics.Collector) {
	t.Helper()
	col := metrics.NewCollector(prometheus.NewRegistry())
	exec, err := NewExecutor(endpoints.LexModelBuilding, Options{
		Region:       "us-west-2",
		Credentials:  credentials.NewStaticCredentialsProvider("AKID", "SECRET", ""),
		HTTPClient:   srv.Client(),
		Retryer:      retryer,
		BaseEndpoint: aws.String(srv.URL),
		Metrics:      col,
		UserAgent:    "test-agent/1.0",
	}, plainDecoder)
	require.NoError(t, err)
	return exec, col
}

func TestExecutorSendsSignedRequest(t *testing.T) {
	fake := &fakeService{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	exec, col := newTestExecutor(t, srv, fixedRetryer{attempts: 3})
	resp, err := exec.Do(context.Background(), &Request{
		Operation:   "PutBot",
		Method:      http.MethodPut,
		Path:        "/bots/my%20bot/versions/$LATEST",
		Query:       url.Values{"x": {"1"}},
		ContentType: "application/x-amz-json-1.1",
		Body:        []byte(`{"locale":"en-US"}`),
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "payload", string(resp.Body))
	require.Equal(t, "rid-1", resp.RequestID)

	require.Len(t, fake.requests, 1)
	got := fake.requests[0]
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/bots/my%20bot/versions/$LATEST", got.path)
	assert.Equal(t, "1", got.query.Get("x"))
	assert.Equal(t, `{"locale":"en-US"}`, got.body)
	assert.Equal(t, "application/x-amz-json-1.1", got.header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(got.header.Get("Authorization"), "AWS4-HMAC-SHA256 Credential=AKID/"))
	assert.Contains(t, got.header.Get("Authorization"), "/us-west-2/lex/aws4_request")
	assert.NotEmpty(t, got.header.Get("X-Amz-Date"))
	assert.Equal(t, "test-agent/1.0 api/lex", got.header.Get("User-Agent"))
	assert.Len(t, got.header.Get("Amz-Sdk-Invocation-Id"), 36)
	assert.Equal(t, "attempt=1; max=3", got.header.Get("Amz-Sdk-Request"))

	assert.Equal(t, 1, testutil.CollectAndCount(col.OperationDuration))
	assert.Equal(t, 0, testutil.CollectAndCount(col.OperationErrors))
}

func TestExecutorRetriesServerErrors(t *testing.T) {
	fake := &fakeService{statuses: []int{http.StatusServiceUnavailable, http.StatusInternalServerError}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	exec, col := newTestExecutor(t, srv, fixedRetryer{attempts: 3})
	resp, err := exec.Do(context.Background(), &Request{Operation: "GetBots", Method: http.MethodGet, Path: "/bots/"})
	require.NoError(t, err)
	require.Equal(t, "rid-3", resp.RequestID)

	require.Len(t, fake.requests, 3)
	assert.Equal(t, "attempt=3; max=3", fake.requests[2].header.Get("Amz-Sdk-Request"))
	assert.Equal(t, fake.requests[0].header.Get("Amz-Sdk-Invocation-Id"), fake.requests[2].header.Get("Amz-Sdk-Invocation-Id"))
	assert.Equal(t, 2.0, testutil.ToFloat64(col.Retries.WithLabelValues(string(endpoints.LexModelBuilding), "GetBots")))
}

func TestExecutorStopsAfterMaxAttempts(t *testing.T) {
	fake := &fakeService{statuses: []int{502, 502, 502, 502}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	exec, col := newTestExecutor(t, srv, fixedRetryer{attempts: 2})
	_, err := exec.Do(context.Background(), &Request{Operation: "GetBots", Method: http.MethodGet, Path: "/bots/"})
	require.Error(t, err)

	var se *apierror.ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "BadGateway", se.Code)
	assert.Equal(t, "rid-2", se.RequestID)
	assert.Len(t, fake.requests, 2)
	assert.Equal(t, 1.0, testutil.ToFloat64(col.OperationErrors.WithLabelValues(string(endpoints.LexModelBuilding), "GetBots", "BadGateway")))
}

func TestExecutorDoesNotRetryClientErrors(t *testing.T) {
	fake := &fakeService{statuses: []int{http.StatusNotFound}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	exec, _ := newTestExecutor(t, srv, fixedRetryer{attempts: 5})
	_, err := exec.Do(context.Background(), &Request{Operation: "GetBot", Method: http.MethodGet, Path: "/bots/x"})
	require.Error(t, err)
	assert.Len(t, fake.requests, 1)
}

func TestExecutorHonoursContextWhileWaiting(t *testing.T) {
	fake := &fakeService{statuses: []int{503, 503, 503}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	exec, _ := newTestExecutor(t, srv, fixedRetryer{attempts: 3, delay: time.Hour})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := exec.Do(ctx, &Request{Operation: "GetBots", Method: http.MethodGet, Path: "/bots/"})
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), 10*time.Second)
}

func TestJoinURL(t *testing.T) {
	base, err := url.Parse("https://models.lex.us-east-1.amazonaws.com/prefix/")
	require.NoError(t, err)

	u, err := joinURL(base, "/bots/a%2Fb", url.Values{"k": {"v w"}})
	require.NoError(t, err)
	assert.Equal(t, "https://models.lex.us-east-1.amazonaws.com/prefix/bots/a%2Fb?k=v+w", u.String())
	assert.Equal(t, "/prefix/", base.Path)

	root, err := url.Parse("http://localhost:8080")
	require.NoError(t, err)
	u, err = joinURL(root, "/", nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/", u.String())
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{BaseEndpoint: aws.String("http://x")}.WithDefaults()
	assert.NotEmpty(t, opts.Region)
	assert.NotNil(t, opts.HTTPClient)
	assert.NotNil(t, opts.Retryer)
	assert.NotNil(t, opts.Resolver)
	assert.NotNil(t, opts.Logger)
	assert.NotEmpty(t, opts.UserAgent)

	cp := opts.Copy()
	*cp.BaseEndpoint = "http://y"
	assert.Equal(t, "http://x", *opts.BaseEndpoint)
}

func TestNewExecutorRequiresDecoder(t *testing.T) {
	_, err := NewExecutor(endpoints.ElastiCache, Options{}, nil)
	require.Error(t, err)
	_, err = NewExecutor("nope", Options{}, plainDecoder)
	require.Error(t, err)
}
