package main

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/require"
)

// readFrame collects one meta message plus its two binary PNGs.
func readFrame(ctx context.Context, t *testing.T, c *websocket.Conn) (frameMeta, [][]byte) {
	t.Helper()

	typ, data, err := c.Read(ctx)
	require.NoError(t, err)
	require.Equal(t, websocket.MessageText, typ)

	var meta frameMeta
	require.NoError(t, json.Unmarshal(data, &meta))
	if meta.Error != "" {
		return meta, nil
	}

	var bins [][]byte
	for i := 0; i < 2; i++ {
		typ, data, err := c.Read(ctx)
		require.NoError(t, err)
		require.Equal(t, websocket.MessageBinary, typ)
		bins = append(bins, data)
	}
	return meta, bins
}

func dialTestServer(t *testing.T) (*websocket.Conn, context.Context) {
	t.Helper()

	sess := testSession(t)
	srv := httptest.NewServer(websocketHandler(sess))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	c, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	c.SetReadLimit(1 << 20) // PNG frames can outgrow the default limit
	t.Cleanup(func() { c.CloseNow() })

	return c, ctx
}

// TestWebsocket_InitialPush: connecting immediately yields the committed
// render without any client message.
func TestWebsocket_InitialPush(t *testing.T) {
	c, ctx := dialTestServer(t)

	meta, bins := readFrame(ctx, t, c)
	require.Empty(t, meta.Error)
	require.Equal(t, 50, meta.MaxIter)
	require.Len(t, bins, 2)
	w, h := decodePNGSize(t, bins[0])
	require.Equal(t, meta.Resolution, w)
	require.Equal(t, meta.Resolution, h)
}

// TestWebsocket_ApplyRoundTrip: an apply request produces a frame with the
// newly committed values.
func TestWebsocket_ApplyRoundTrip(t *testing.T) {
	c, ctx := dialTestServer(t)
	readFrame(ctx, t, c) // initial push

	req, err := json.Marshal(applyRequest{Iterations: 105, Zoom: -0.4})
	require.NoError(t, err)
	require.NoError(t, c.Write(ctx, websocket.MessageText, req))

	meta, bins := readFrame(ctx, t, c)
	require.Empty(t, meta.Error)
	require.Equal(t, 105, meta.MaxIter)
	require.Equal(t, -0.4, meta.Zoom)
	require.Len(t, bins, 2)
}

// TestWebsocket_InvalidApply: a rejected apply yields an error meta with no
// binary frames, and the connection keeps working.
func TestWebsocket_InvalidApply(t *testing.T) {
	c, ctx := dialTestServer(t)
	readFrame(ctx, t, c) // initial push

	req, err := json.Marshal(applyRequest{Iterations: -1, Zoom: 0})
	require.NoError(t, err)
	require.NoError(t, c.Write(ctx, websocket.MessageText, req))

	meta, bins := readFrame(ctx, t, c)
	require.NotEmpty(t, meta.Error)
	require.Nil(t, bins)

	// Connection survives a rejected apply.
	req, err = json.Marshal(applyRequest{Iterations: 20, Zoom: 0})
	require.NoError(t, err)
	require.NoError(t, c.Write(ctx, websocket.MessageText, req))

	meta, bins = readFrame(ctx, t, c)
	require.Empty(t, meta.Error)
	require.Equal(t, 20, meta.MaxIter)
	require.Len(t, bins, 2)
}
