package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *Client {
	return &Client{
		apiKey:     "test-api-key",
		httpClient: server.Client(),
		baseURL:    server.URL + "/data/2.5/weather",
	}
}

func TestFetch(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    Observation
		wantErr error
	}{
		{
			name:   "clear sky",
			status: http.StatusOK,
			body: `{"weather":[{"id":800,"main":"Clear","description":"clear sky"}],
				"main":{"temp":24.5,"humidity":40},"wind":{"speed":3.1},"cod":200}`,
			want: Observation{
				Conditions:  "Clear",
				Temperature: Celsius(24.5),
				Description: "clear sky",
				Humidity:    40,
				WindSpeed:   3.1,
			},
		},
		{
			name:   "freezing temperature is kept distinct from missing",
			status: http.StatusOK,
			body:   `{"weather":[{"main":"Snow","description":"light snow"}],"main":{"temp":0,"humidity":90},"wind":{"speed":1}}`,
			want: Observation{
				Conditions:  "Snow",
				Temperature: Celsius(0),
				Description: "light snow",
				Humidity:    90,
				WindSpeed:   1,
			},
		},
		{
			name:   "missing main block leaves temperature nil",
			status: http.StatusOK,
			body:   `{"weather":[{"main":"Rain","description":"light rain"}]}`,
			want: Observation{
				Conditions:  "Rain",
				Description: "light rain",
			},
		},
		{
			name:    "unknown city",
			status:  http.StatusNotFound,
			body:    `{"cod":"404","message":"city not found"}`,
			wantErr: ErrLocationNotFound,
		},
		{
			name:    "bad key",
			status:  http.StatusUnauthorized,
			body:    `{"cod":401,"message":"Invalid API key."}`,
			wantErr: ErrInvalidAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				assert.Equal(t, "metric", q.Get("units"))
				assert.Equal(t, "test-api-key", q.Get("appid"))
				assert.Equal(t, "London", q.Get("q"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			got, err := newTestClient(server).Fetch(context.Background(), "London")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetch_ServerErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server).Fetch(context.Background(), "London")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrLocationNotFound)
	assert.NotErrorIs(t, err, ErrInvalidAPIKey)
}

func TestFetch_TransportErrorHidesAPIKey(t *testing.T) {
	client, err := NewClient(&Config{
		APIKey:  "owm-secret-key",
		BaseURL: "http://127.0.0.1:1/data/2.5/weather",
		Timeout: time.Second,
	})
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), "London")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "owm-secret-key")
	assert.NotContains(t, err.Error(), "appid")
	assert.Contains(t, err.Error(), "127.0.0.1:1/data/2.5/weather")
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(&Config{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	client, err := NewClient(&Config{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, "test-key", client.apiKey)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.NotNil(t, client.httpClient)

	custom, err := NewClient(&Config{APIKey: "k", BaseURL: "http://example.test/weather"})
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/weather", custom.baseURL)
}
