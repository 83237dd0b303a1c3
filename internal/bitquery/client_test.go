package bitquery

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/dexpulse/internal/domain/models"
)

// raydiumTrades is a trimmed recent-trades response for the Raydium family.
const raydiumTrades = `{"data":{"Solana":{"DEXTradeByTokens":[
	{"Block":{"Time":"2024-01-01T23:59:58Z"},"Trade":{"Dex":{"ProtocolFamily":"Raydium"},"Market":{"MarketAddress":"M1"},
	 "Currency":{"Symbol":"WSOL","MintAddress":"So11111111111111111111111111111111111111112"},
	 "Side":{"Currency":{"Symbol":"XYZ","MintAddress":"TokenXYZ"}}}},
	{"Block":{"Time":"2024-01-01T23:59:57Z"},"Trade":{"Dex":{"ProtocolFamily":"Raydium"},"Market":{"MarketAddress":"M2"},
	 "Currency":{"Symbol":"ABC","MintAddress":"TokenABC"},
	 "Side":{"Currency":{"Symbol":"WSOL","MintAddress":"So11111111111111111111111111111111111111112"}}}}
]}}}`

func TestClient_Query_SendsRequest(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "secret", r.Header.Get(APIKeyHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(raydiumTrades))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", 5*time.Second)
	window := models.TimeWindow{Since: "2024-01-01T00:00:00Z", Till: "2024-01-02T00:00:00Z"}
	doc, err := c.Query(context.Background(), RecentTradesQuery(models.FamilyRaydium, window))
	require.NoError(t, err)

	assert.Equal(t, "Raydium", got.Variables["family"])
	assert.Equal(t, "2024-01-01T00:00:00Z", got.Variables["since"])
	assert.Equal(t, "2024-01-02T00:00:00Z", got.Variables["till"])

	var parsed struct {
		Data struct {
			Solana struct {
				DEXTradeByTokens []struct {
					Trade struct {
						Dex struct {
							ProtocolFamily string `json:"ProtocolFamily"`
						} `json:"Dex"`
					} `json:"Trade"`
				} `json:"DEXTradeByTokens"`
			} `json:"Solana"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(doc, &parsed))
	trades := parsed.Data.Solana.DEXTradeByTokens
	assert.LessOrEqual(t, len(trades), RecentTradesLimit)
	for _, tr := range trades {
		assert.Equal(t, "Raydium", tr.Trade.Dex.ProtocolFamily)
	}
	assert.Equal(t, []string{"TokenXYZ", "TokenABC"}, ExtractTokenIdentifiers(doc, models.NativeWrappedMint))
}

func TestClient_Query_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	doc, err := NewClient(srv.URL, "k", time.Second).Query(context.Background(), TokenMetricsQuery("Mint", "w"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Failed to parse response"}`, string(doc))
}

func TestClient_Query_GraphQLErrorPassesThrough(t *testing.T) {
	const body = `{"errors":[{"message":"Variable $since1 of type DateTime! was provided invalid value"}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	doc, err := NewClient(srv.URL, "k", time.Second).Query(context.Background(), TokenMetricsQuery("Mint", "yesterday"))
	require.NoError(t, err)
	assert.JSONEq(t, body, string(doc))
}

func TestClient_Query_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	doc, err := NewClient(url, "k", time.Second).Query(context.Background(), TokenMetricsQuery("Mint", "w"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.Nil(t, doc)
}

func TestClient_Query_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClientWithHTTP(srv.URL, "k", nil).Query(ctx, TokenMetricsQuery("Mint", "w"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}
