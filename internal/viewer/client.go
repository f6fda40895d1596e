// Package viewer implements the read-only client side of the live sync
// channel: a websocket subscriber that keeps a display eventually
// consistent through disconnects, with exponential reconnect backoff
// and stale-snapshot suppression.
package viewer

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/prakashgyan/mafiamanagerirl/internal/model"
)

// ConnState is the connection lifecycle state of a viewer.
type ConnState string

const (
	StateConnecting   ConnState = "connecting"
	StateOpen         ConnState = "open"
	StateReconnecting ConnState = "reconnecting"
	StateClosed       ConnState = "closed"
)

const (
	DefaultBaseDelay = 1 * time.Second
	DefaultMaxDelay  = 30 * time.Second
)

// NextDelay computes the reconnect backoff for the given attempt
// (1-based): min(maxDelay, base * 2^(attempt-1)).
func NextDelay(base, max time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := base
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= max || d <= 0 {
			return max
		}
	}
	if d > max {
		return max
	}
	return d
}

// Options tune a Client. Zero values fall back to defaults.
type Options struct {
	BaseDelay time.Duration
	MaxDelay  time.Duration
	Dialer    *websocket.Dialer
}

// Client subscribes to one game's snapshot stream. It never mutates
// authoritative state; transport failures degrade to reconnection and
// are not surfaced to the caller.
type Client struct {
	url        string
	onSnapshot func(model.Snapshot)
	base       time.Duration
	max        time.Duration
	dialer     *websocket.Dialer

	mu       sync.Mutex
	state    ConnState
	attempts int
	conn     *websocket.Conn
	latest   *model.Snapshot

	cancel context.CancelFunc
	done   chan struct{}
}

// NewClient creates a viewer for the given websocket URL. onSnapshot is
// called for every accepted (fresh, well-formed) snapshot.
func NewClient(url string, onSnapshot func(model.Snapshot), opts Options) *Client {
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = DefaultBaseDelay
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = DefaultMaxDelay
	}
	if opts.Dialer == nil {
		opts.Dialer = websocket.DefaultDialer
	}
	return &Client{
		url:        url,
		onSnapshot: onSnapshot,
		base:       opts.BaseDelay,
		max:        opts.MaxDelay,
		dialer:     opts.Dialer,
		state:      StateClosed,
		done:       make(chan struct{}),
	}
}

// Start begins the connect loop. It returns immediately; Close stops it.
func (c *Client) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()
	go c.run(ctx)
}

// Close disables the viewer: it preempts any in-flight connection
// attempt or pending backoff timer, closes the connection cleanly and
// waits for the loop to exit. No reconnect fires afterwards.
func (c *Client) Close() {
	c.mu.Lock()
	cancel := c.cancel
	conn := c.conn
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if conn != nil {
		conn.Close()
	}
	<-c.done
}

// State returns the current connection state.
func (c *Client) State() ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Attempts returns the reconnect attempt counter. It resets to 0 on a
// successful open.
func (c *Client) Attempts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attempts
}

// Latest returns the freshest snapshot applied so far, or nil.
func (c *Client) Latest() *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest
}

func (c *Client) run(ctx context.Context) {
	defer close(c.done)
	defer c.setState(StateClosed)

	for {
		c.setState(StateConnecting)
		conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if !c.waitBackoff(ctx) {
				return
			}
			continue
		}

		c.mu.Lock()
		c.conn = conn
		c.state = StateOpen
		c.attempts = 0
		c.mu.Unlock()

		c.readLoop(conn)
		conn.Close()

		c.mu.Lock()
		c.conn = nil
		c.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		if !c.waitBackoff(ctx) {
			return
		}
	}
}

// waitBackoff increments the attempt counter, then sleeps for the
// scheduled delay on a cancellable timer. It reports false when the
// viewer was disabled while waiting.
func (c *Client) waitBackoff(ctx context.Context) bool {
	c.mu.Lock()
	c.attempts++
	attempt := c.attempts
	c.state = StateReconnecting
	c.mu.Unlock()

	timer := time.NewTimer(NextDelay(c.base, c.max, attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var snap model.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil || snap.GameID == "" {
			// Malformed payloads are dropped without touching state.
			log.Printf("Viewer dropped malformed payload: %v", err)
			continue
		}

		c.mu.Lock()
		fresh := c.latest == nil || snap.FresherThan(*c.latest)
		if fresh {
			applied := snap
			c.latest = &applied
		}
		c.mu.Unlock()

		if fresh && c.onSnapshot != nil {
			c.onSnapshot(snap)
		}
	}
}

func (c *Client) setState(s ConnState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}
