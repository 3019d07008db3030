package endpoints

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	r := &Resolver{overrides: map[ServiceID]string{}}
	r.cache = NewResolver(time.Minute).cache

	tests := []struct {
		name    string
		service ServiceID
		region  string
		want    string
		wantErr bool
	}{
		{name: "elasticache commercial", service: ElastiCache, region: "us-west-2", want: "https://elasticache.us-west-2.amazonaws.com"},
		{name: "elasticache china", service: ElastiCache, region: "cn-north-1", want: "https://elasticache.cn-north-1.amazonaws.com.cn"},
		{name: "lex models", service: LexModelBuilding, region: "eu-west-1", want: "https://models.lex.eu-west-1.amazonaws.com"},
		{name: "bad region", service: ElastiCache, region: "us-east-1/../evil", wantErr: true},
		{name: "empty region", service: ElastiCache, region: "", wantErr: true},
		{name: "unknown service", service: ServiceID("nope"), region: "us-east-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := r.Resolve(tt.service, tt.region)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, u.String())
		})
	}
}

func TestResolveCachesAndCopies(t *testing.T) {
	r := NewResolver(time.Minute)
	r.overrides = map[ServiceID]string{}

	first, err := r.Resolve(ElastiCache, "us-east-1")
	require.NoError(t, err)
	first.Host = "mutated.example.com"

	second, err := r.Resolve(ElastiCache, "us-east-1")
	require.NoError(t, err)
	require.Equal(t, "elasticache.us-east-1.amazonaws.com", second.Host)
}

func TestOverride(t *testing.T) {
	r := NewResolver(time.Minute)
	_, err := r.Resolve(LexModelBuilding, "us-east-1")
	require.NoError(t, err)

	r.WithOverride(LexModelBuilding, "http://127.0.0.1:8080/")
	u, err := r.Resolve(LexModelBuilding, "us-east-1")
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:8080", u.String())
}

func TestParseEndpoint(t *testing.T) {
	_, err := ParseEndpoint("ftp://example.com")
	require.Error(t, err)
	_, err = ParseEndpoint("http://")
	require.Error(t, err)
	u, err := ParseEndpoint("https://localhost:4566/")
	require.NoError(t, err)
	require.Equal(t, "localhost:4566", u.Host)
}

func TestLookupSigningNames(t *testing.T) {
	svc, err := Lookup(ElastiCache)
	require.NoError(t, err)
	require.Equal(t, "elasticache", svc.SigningName)

	svc, err = Lookup(LexModelBuilding)
	require.NoError(t, err)
	require.Equal(t, "lex", svc.SigningName)
}
