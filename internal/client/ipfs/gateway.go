package ipfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	httpclient "github.com/metawedding/wedding-api/internal/client/http"
	"github.com/metawedding/wedding-api/internal/logger"
	"github.com/metawedding/wedding-api/internal/types/business"
)

var (
	// ErrNotIPFSURL is returned for meta URLs that are not ipfs://<cid>[/path].
	ErrNotIPFSURL = errors.New("meta url is not an ipfs url")
	// ErrInvalidMetadata is returned when the gateway body is not JSON.
	ErrInvalidMetadata = errors.New("metadata is not valid json")
)

// Gateway resolves proposition and marriage meta URLs through an HTTP gateway.
type Gateway struct {
	client *httpclient.HTTPClient
}

// NewGateway creates a gateway client rooted at baseURL (e.g. https://ipfs.io).
func NewGateway(baseURL string, options ...httpclient.ClientOption) *Gateway {
	opts := append([]httpclient.ClientOption{httpclient.WithBaseURL(baseURL)}, options...)
	return &Gateway{client: httpclient.NewHTTPClient(opts...)}
}

// GatewayPath maps ipfs://<cid>[/path] to /ipfs/<cid>[/path].
func GatewayPath(metaURL string) (string, error) {
	c, ok := business.ParseIPFSURL(metaURL)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotIPFSURL, metaURL)
	}
	rest := strings.TrimPrefix(metaURL, "ipfs://")
	suffix := ""
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		suffix = rest[i:]
	}
	return "/ipfs/" + c.String() + suffix, nil
}

// FetchMetadata downloads the JSON document a meta URL points to.
func (g *Gateway) FetchMetadata(ctx context.Context, metaURL string) (json.RawMessage, error) {
	path, err := GatewayPath(metaURL)
	if err != nil {
		return nil, err
	}

	body, err := g.client.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", metaURL, err)
	}
	if !json.Valid(body) {
		logger.Warn("Gateway returned non-JSON metadata",
			zap.String("meta_url", metaURL),
			zap.Int("bytes", len(body)))
		return nil, fmt.Errorf("%w: %s", ErrInvalidMetadata, metaURL)
	}
	return json.RawMessage(body), nil
}
