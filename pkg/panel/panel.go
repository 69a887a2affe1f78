// Package panel serves a live view of the 7-segment display over HTTP.
// Browsers load the inline page and watch display changes pushed over a
// websocket.
package panel

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"

	"github.com/golang/glog"

	wsock "github.com/sensorlink/seglink.go/pkg/device/comm/websocket"
	fx "github.com/sensorlink/seglink.go/pkg/framework"
	"github.com/sensorlink/seglink.go/pkg/sim"
)

// State is the display state pushed to viewers.
type State struct {
	Digit    int    `json:"digit"`
	Sample   uint32 `json:"sample"`
	Frames   uint64 `json:"frames"`
	Pattern  uint32 `json:"pattern"`
	Segments string `json:"segments"`
}

// Panel publishes display states to connected viewers.
type Panel struct {
	Config *Config

	lock     sync.Mutex
	current  State
	hasState bool
	viewers  map[chan State]struct{}
}

// NewPanel creates a Panel.
func NewPanel(config *Config) *Panel {
	return &Panel{
		Config:  config,
		viewers: make(map[chan State]struct{}),
	}
}

// Notify publishes a new display state. Slow viewers miss intermediate
// states rather than stall the caller.
func (p *Panel) Notify(state State) {
	state.Segments = sim.Decode(byte(state.Pattern)).String()
	p.lock.Lock()
	p.current, p.hasState = state, true
	for ch := range p.viewers {
		select {
		case ch <- state:
		default:
		}
	}
	p.lock.Unlock()
}

// Current returns the last published state.
func (p *Panel) Current() (State, bool) {
	p.lock.Lock()
	defer p.lock.Unlock()
	return p.current, p.hasState
}

func (p *Panel) subscribe() chan State {
	ch := make(chan State, 4)
	p.lock.Lock()
	if p.hasState {
		ch <- p.current
	}
	p.viewers[ch] = struct{}{}
	p.lock.Unlock()
	return ch
}

func (p *Panel) unsubscribe(ch chan State) {
	p.lock.Lock()
	delete(p.viewers, ch)
	p.lock.Unlock()
}

// Handler builds the HTTP handler serving the page and the websocket.
func (p *Panel) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(pageHTML))
	})
	mux.Handle("/ws", wsock.Handler(p.serveViewer))
	return mux
}

func (p *Panel) serveViewer(rw *wsock.ReadWriter) {
	ch := p.subscribe()
	defer p.unsubscribe(ch)
	for state := range ch {
		pkt, err := json.Marshal(&state)
		if err != nil {
			return
		}
		if err = rw.WritePacket(pkt); err != nil {
			return
		}
	}
}

// Run implements Runnable: it serves HTTP until ctx is done.
func (p *Panel) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", p.Config.Addr)
	if err != nil {
		return err
	}
	glog.Infof("panel on http://%s/", ln.Addr())
	srv := &http.Server{Handler: p.Handler()}
	go func() {
		<-ctx.Done()
		srv.Close()
		p.closeViewers()
	}()
	if err := srv.Serve(ln); err != http.ErrServerClosed {
		return err
	}
	return ctx.Err()
}

func (p *Panel) closeViewers() {
	p.lock.Lock()
	for ch := range p.viewers {
		close(ch)
	}
	p.viewers = make(map[chan State]struct{})
	p.lock.Unlock()
}

// AddToLoop implements LoopAdder.
func (p *Panel) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(p)
}
