package weatherrelay

import (
	"context"
	"strings"
	"time"

	httpx "agent-relay/internal/common/http"
	"agent-relay/internal/models"
)

// ProviderClient talks to the weather provider. A client is acquired for a
// single relay request and closed before the handler returns.
type ProviderClient interface {
	GetWeather(ctx context.Context, location string) (map[string]interface{}, error)
	Close() error
}

// ClientFactory acquires a new ProviderClient.
type ClientFactory func() ProviderClient

type providerClient struct {
	baseURL string
	http    *httpx.Client
}

func NewProviderClient(baseURL string, timeout time.Duration) ProviderClient {
	return &providerClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpx.NewClient(timeout),
	}
}

func (c *providerClient) GetWeather(ctx context.Context, location string) (map[string]interface{}, error) {
	var payload map[string]interface{}
	err := c.http.PostJSON(ctx, c.baseURL+"/weather", models.LocationRequest{Location: location}, &payload)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *providerClient) Close() error {
	return c.http.Close()
}
