package ipfs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/metawedding/wedding-api/internal/client/http"
)

func testCID(t *testing.T) cid.Cid {
	t.Helper()
	sum, err := multihash.Sum([]byte("wedding meta"), multihash.SHA2_256, -1)
	require.NoError(t, err)
	return cid.NewCidV1(cid.Raw, sum)
}

func TestGatewayPath(t *testing.T) {
	c := testCID(t)

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "bare cid", url: "ipfs://" + c.String(), want: "/ipfs/" + c.String()},
		{name: "with path", url: "ipfs://" + c.String() + "/meta.json", want: "/ipfs/" + c.String() + "/meta.json"},
		{name: "http url", url: "https://example.com/meta.json", wantErr: true},
		{name: "bad cid", url: "ipfs://nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GatewayPath(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotIPFSURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGateway_FetchMetadata(t *testing.T) {
	c := testCID(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ipfs/" + c.String() + "/meta.json":
			_, _ = w.Write([]byte(`{"name":"Alice & Bob","vows":"forever"}`))
		case "/ipfs/" + c.String() + "/photo.png":
			_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL, httpclient.WithRetryConfig(nil))

	meta, err := gw.FetchMetadata(context.Background(), "ipfs://"+c.String()+"/meta.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Alice & Bob","vows":"forever"}`, string(meta))

	_, err = gw.FetchMetadata(context.Background(), "ipfs://"+c.String()+"/photo.png")
	assert.ErrorIs(t, err, ErrInvalidMetadata)

	_, err = gw.FetchMetadata(context.Background(), "ipfs://"+c.String()+"/missing")
	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)

	_, err = gw.FetchMetadata(context.Background(), "https://example.com")
	assert.ErrorIs(t, err, ErrNotIPFSURL)
}
