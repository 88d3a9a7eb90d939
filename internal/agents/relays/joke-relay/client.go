package jokerelay

import (
	"context"
	"strings"
	"time"

	httpx "agent-relay/internal/common/http"
)

// ProviderClient fetches jokes. The relay acquires one per request.
type ProviderClient interface {
	GetJoke(ctx context.Context) (map[string]interface{}, error)
	Close() error
}

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

func (c *providerClient) GetJoke(ctx context.Context) (map[string]interface{}, error) {
	var payload map[string]interface{}
	if err := c.http.GetJSON(ctx, c.baseURL+"/joke", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *providerClient) Close() error {
	return c.http.Close()
}
