package main

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

//go:embed static
var staticFS embed.FS

// newWebServer builds the HTTP server: the embedded explorer page at /,
// and the websocket endpoint at /ws carrying apply requests and render
// frames.
func newWebServer(addr string, sess *session) (*http.Server, error) {
	staticRoot, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("embedded static dir: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(sess))
	mux.Handle("/", http.FileServer(http.FS(staticRoot)))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv, nil
}

// websocketHandler handles the http ws endpoint
// each accepted connection gets its own serveClient loop
func websocketHandler(sess *session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		err = serveClient(r.Context(), c, sess)
		switch websocket.CloseStatus(err) {
		case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			return
		}
		if err != nil {
			log.Printf("client %s: %v", r.RemoteAddr, err)
			return
		}
		c.Close(websocket.StatusNormalClosure, "")
	}
}

// serveClient pushes the committed render immediately, then answers each
// apply request with a fresh frame. Returns when the client goes away.
func serveClient(ctx context.Context, c *websocket.Conn, sess *session) error {
	fr, err := sess.current()
	if err != nil {
		return fmt.Errorf("initial render: %w", err)
	}
	if err := pushFrame(ctx, c, fr); err != nil {
		return err
	}

	for {
		typ, data, err := c.Read(ctx)
		if err != nil {
			// Covers client close and context cancellation.
			return err
		}
		if typ != websocket.MessageText {
			continue
		}

		var req applyRequest
		if err := json.Unmarshal(data, &req); err != nil {
			if err := pushError(ctx, c, fmt.Errorf("bad apply request: %w", err)); err != nil {
				return err
			}
			continue
		}

		fr, err := sess.apply(req)
		if err != nil {
			// Invalid staged values; committed parameters are unchanged.
			if err := pushError(ctx, c, err); err != nil {
				return err
			}
			continue
		}
		if err := pushFrame(ctx, c, fr); err != nil {
			return err
		}
	}
}

// pushFrame sends one render as three websocket messages: the JSON meta,
// then the image PNG, then the colorbar PNG. Messages on one connection
// are sent from a single goroutine, so the client can rely on that order.
func pushFrame(ctx context.Context, c *websocket.Conn, fr frame) error {
	meta, err := json.Marshal(fr.meta)
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}
	if err := c.Write(ctx, websocket.MessageText, meta); err != nil {
		return fmt.Errorf("write meta: %w", err)
	}
	if err := c.Write(ctx, websocket.MessageBinary, fr.img); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	if err := c.Write(ctx, websocket.MessageBinary, fr.colorbar); err != nil {
		return fmt.Errorf("write colorbar: %w", err)
	}
	return nil
}

func pushError(ctx context.Context, c *websocket.Conn, cause error) error {
	meta, err := json.Marshal(frameMeta{Error: cause.Error()})
	if err != nil {
		return fmt.Errorf("marshal error meta: %w", err)
	}
	if err := c.Write(ctx, websocket.MessageText, meta); err != nil {
		return fmt.Errorf("write error meta: %w", err)
	}
	return nil
}
