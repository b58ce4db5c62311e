package main

import "sync"

// helloMsg is the first frame sent on every websocket connection: the
// canvas dimensions and how many tiles the client should expect.
type helloMsg struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	TotalTiles int `json:"totalTiles"`
}

// tileMsg carries one finished tile: its top-left pixel in the full image
// and the tile encoded as PNG (base64 in the JSON frame).
type tileMsg struct {
	X   int    `json:"x"`
	Y   int    `json:"y"`
	PNG []byte `json:"png"`
}

// hub fans finished tiles out to websocket subscribers. Tiles published
// before a client connects are replayed from history, so late joiners
// still see the full image build up.
type hub struct {
	mu      sync.Mutex
	history []tileMsg
	subs    map[chan tileMsg]struct{}
	cap     int
}

func newHub(totalTiles int) *hub {
	return &hub{
		subs: make(map[chan tileMsg]struct{}),
		cap:  totalTiles,
	}
}

func (h *hub) publish(m tileMsg) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.history = append(h.history, m)
	for ch := range h.subs {
		ch <- m
	}
}

// subscribe atomically snapshots the history and registers a channel for
// tiles published afterwards. The channel is buffered for every tile of
// the render, so publish never blocks on a slow client.
func (h *hub) subscribe() ([]tileMsg, chan tileMsg) {
	h.mu.Lock()
	defer h.mu.Unlock()
	replay := make([]tileMsg, len(h.history))
	copy(replay, h.history)
	ch := make(chan tileMsg, h.cap)
	h.subs[ch] = struct{}{}
	return replay, ch
}

func (h *hub) unsubscribe(ch chan tileMsg) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, ch)
}
