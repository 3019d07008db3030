package restjson

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type status string

type message struct {
	ContentType status  `json:"contentType"`
	Content     *string `json:"content"`
	GroupNumber *int32  `json:"groupNumber"`
}

type prompt struct {
	Messages     []message `json:"messages"`
	MaxAttempts  *int32    `json:"maxAttempts"`
	ResponseCard *string   `json:"responseCard"`
}

type botShape struct {
	Name                *string           `json:"name"`
	Status              status            `json:"status"`
	ChildDirected       *bool             `json:"childDirected"`
	IdleSessionTTL      *int32            `json:"idleSessionTTLInSeconds"`
	Confidence          *float64          `json:"nluIntentConfidenceThreshold"`
	LastUpdatedDate     *time.Time        `json:"lastUpdatedDate"`
	ClarificationPrompt *prompt           `json:"clarificationPrompt"`
	Intents             []string          `json:"intents"`
	Attributes          map[string]string `json:"attributes"`
	Payload             []byte            `json:"payload"`
	Size                *int64            `json:"size"`
}

func TestJSONRoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 250*int(time.Millisecond), time.UTC)
	in := &botShape{
		Name:            ptr("OrderFlowers"),
		Status:          "READY",
		ChildDirected:   ptr(false),
		IdleSessionTTL:  ptr(int32(300)),
		Confidence:      ptr(0.42),
		LastUpdatedDate: &ts,
		ClarificationPrompt: &prompt{
			Messages: []message{
				{ContentType: "PlainText", Content: ptr("Sorry?"), GroupNumber: ptr(int32(1))},
				{ContentType: "SSML", Content: ptr("<speak>what</speak>")},
			},
			MaxAttempts: ptr(int32(2)),
		},
		Intents:    []string{},
		Attributes: map[string]string{"b": "2", "a": "1"},
		Payload:    []byte{0, 1, 2, 255},
		Size:       ptr(int64(1) << 40),
	}

	data, err := BuildJSON(in)
	require.NoError(t, err)

	out := new(botShape)
	require.NoError(t, UnmarshalJSON(data, out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildJSONOmitsAbsent(t *testing.T) {
	data, err := BuildJSON(&botShape{Name: ptr("x")})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"x"}`, string(data))

	data, err = BuildJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestBuildJSONSortsMapKeys(t *testing.T) {
	data, err := BuildJSON(&botShape{Attributes: map[string]string{"z": "1", "a": "2"}})
	require.NoError(t, err)
	assert.Equal(t, `{"attributes":{"a":"2","z":"1"}}`, string(data))
}

func TestBuildJSONTimestamp(t *testing.T) {
	ts := time.Unix(1700000000, 500*int64(time.Millisecond))
	data, err := BuildJSON(&botShape{LastUpdatedDate: &ts})
	require.NoError(t, err)
	assert.Equal(t, `{"lastUpdatedDate":1700000000.5}`, string(data))
}

func TestUnmarshalJSONTolerance(t *testing.T) {
	doc := `{
		"name": "b",
		"status": null,
		"brandNewField": {"nested": [1, 2, 3]},
		"checksum": "abc",
		"idleSessionTTLInSeconds": 60,
		"nluIntentConfidenceThreshold": "NaN"
	}`
	out := new(botShape)
	require.NoError(t, UnmarshalJSON([]byte(doc), out))
	assert.Equal(t, "b", *out.Name)
	assert.Equal(t, status(""), out.Status)
	assert.Nil(t, out.ChildDirected)
	assert.Nil(t, out.Intents)
	assert.Equal(t, int32(60), *out.IdleSessionTTL)
	assert.True(t, math.IsNaN(*out.Confidence))
}

func TestUnmarshalJSONEmptyBody(t *testing.T) {
	out := new(botShape)
	require.NoError(t, UnmarshalJSON(nil, out))
	require.NoError(t, UnmarshalJSON([]byte("  "), out))
	assert.Nil(t, out.Name)
}

func TestUnmarshalJSONTypeMismatch(t *testing.T) {
	err := UnmarshalJSON([]byte(`{"idleSessionTTLInSeconds":"soon"}`), new(botShape))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "idleSessionTTLInSeconds")

	require.Error(t, UnmarshalJSON([]byte(`{`), new(botShape)))
	require.Error(t, UnmarshalJSON([]byte(`{}`), botShape{}))
}
