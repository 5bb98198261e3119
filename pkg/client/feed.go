package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
)

const feedReadLimit = 1 << 16

// FeedSubscription is a live connection to the realtime feed. Events arrive
// on Events until the subscription is closed or the connection drops, after
// which Events is closed and Err reports the cause.
type FeedSubscription struct {
	Events <-chan FeedEvent

	conn   *websocket.Conn
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Err returns the terminal error after Events is closed. It is nil when the
// subscription was closed locally.
func (fs *FeedSubscription) Err() error {
	<-fs.done
	return fs.err
}

// Close tears the connection down. Events is closed shortly after.
func (fs *FeedSubscription) Close() error {
	fs.cancel()
	return fs.conn.Close()
}

// SubscribeFeed opens the realtime feed WebSocket. The token rides the query
// string since browsers cannot set headers on upgrade, and the server treats
// both transports the same.
func (c *Client) SubscribeFeed(ctx context.Context, session *Session) (*FeedSubscription, error) {
	if !session.Authenticated() {
		return nil, fmt.Errorf("feed subscription requires an authenticated session")
	}

	wsURL, err := c.feedURL(session)
	if err != nil {
		return nil, err
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("feed dial: status %d: %w", resp.StatusCode, err)
		}
		return nil, fmt.Errorf("feed dial: %w", err)
	}
	conn.SetReadLimit(feedReadLimit)

	runCtx, cancel := context.WithCancel(ctx)
	events := make(chan FeedEvent, 16)
	fs := &FeedSubscription{
		Events: events,
		conn:   conn,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		<-runCtx.Done()
		conn.Close()
	}()
	go fs.readLoop(runCtx, events)
	return fs, nil
}

func (fs *FeedSubscription) readLoop(ctx context.Context, events chan<- FeedEvent) {
	defer close(fs.done)
	defer close(events)
	for {
		_, data, err := fs.conn.ReadMessage()
		if err != nil {
			if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				fs.err = err
			}
			return
		}
		var event FeedEvent
		if err := json.Unmarshal(data, &event); err != nil {
			continue
		}
		select {
		case events <- event:
		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) feedURL(session *Session) (string, error) {
	u, err := url.Parse(c.baseURL + "/api/ws")
	if err != nil {
		return "", fmt.Errorf("parsing feed url: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	q := u.Query()
	q.Set("token", strings.TrimPrefix(session.Token, "Bearer "))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
