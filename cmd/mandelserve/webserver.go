package main

import (
	"embed"
	"image/png"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

//go:embed static
var staticFiles embed.FS

// newWebServer serves the embedded viewer page, the websocket tile feed
// and the finished image.
func newWebServer(addr string, vs *viewServer) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", vs.handleWS)
	mux.HandleFunc("/image.png", vs.handleImage)

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("/", http.FileServer(http.FS(static)))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// handleWS upgrades the connection, sends the hello frame, replays
// already-finished tiles and then streams new ones until the client goes
// away or the feed is exhausted.
func (vs *viewServer) handleWS(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	// We never expect frames from the client; CloseRead gives us a
	// context that ends when the connection does.
	ctx := c.CloseRead(r.Context())

	if err := wsjson.Write(ctx, c, vs.hello); err != nil {
		return
	}

	replay, ch := vs.hub.subscribe()
	defer vs.hub.unsubscribe(ch)

	sent := 0
	for _, m := range replay {
		if err := wsjson.Write(ctx, c, m); err != nil {
			return
		}
		sent++
	}
	for sent < vs.hello.TotalTiles {
		select {
		case m := <-ch:
			if err := wsjson.Write(ctx, c, m); err != nil {
				return
			}
			sent++
		case <-ctx.Done():
			return
		}
	}
	c.Close(websocket.StatusNormalClosure, "render complete")
}

// handleImage blocks until the render is complete, then serves the full
// grayscale frame as PNG.
func (vs *viewServer) handleImage(w http.ResponseWriter, r *http.Request) {
	select {
	case <-vs.done:
	case <-r.Context().Done():
		return
	}
	if vs.renderErr != nil {
		http.Error(w, vs.renderErr.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, vs.final); err != nil {
		log.Printf("encode full image: %v", err)
	}
}
