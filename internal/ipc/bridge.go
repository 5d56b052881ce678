package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

// Envelope is one message read from the websocket.
type Envelope struct {
	Channel string `json:"channel"`
	Payload string `json:"payload"`
}

// Bridge reads envelopes from a websocket endpoint and forwards them to a Bus.
type Bridge struct {
	url            string
	bus            *Bus
	reconnectDelay time.Duration
	dialer         *websocket.Dialer
}

// NewBridge создаёт Bridge для url. reconnectDelay <= 0 означает 1s.
func NewBridge(url string, bus *Bus, reconnectDelay time.Duration) *Bridge {
	if reconnectDelay <= 0 {
		reconnectDelay = time.Second
	}
	return &Bridge{
		url:            url,
		bus:            bus,
		reconnectDelay: reconnectDelay,
		dialer:         websocket.DefaultDialer,
	}
}

// Run keeps the bridge connected until ctx is cancelled.
// Connection errors are logged and retried after the reconnect delay.
func (b *Bridge) Run(ctx context.Context) error {
	for {
		err := b.session(ctx)
		if ctx.Err() != nil {
			return nil
		}
		slog.Warn("ipc bridge disconnected", "url", b.url, "err", err, "retry_in", b.reconnectDelay)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(b.reconnectDelay):
		}
	}
}

// session handles a single websocket connection.
func (b *Bridge) session(ctx context.Context) error {
	conn, resp, err := b.dialer.DialContext(ctx, b.url, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return fmt.Errorf("dialing %s: %w", b.url, err)
	}
	defer conn.Close()
	slog.Info("ipc bridge connected", "url", b.url)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return errors.New("closed by peer")
			}
			return fmt.Errorf("reading message: %w", err)
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			slog.Warn("ipc bridge: malformed envelope", "err", err)
			continue
		}
		if env.Channel == "" {
			slog.Warn("ipc bridge: envelope without channel")
			continue
		}
		slog.Debug("ipc message", "channel", env.Channel)
		b.bus.Send(env.Channel, env.Payload)
	}
}
