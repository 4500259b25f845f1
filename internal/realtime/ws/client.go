package ws

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client is a change stream connection to a POINT server.
type Client struct {
	conn   *websocket.Conn
	events chan ServerMessage

	mu  sync.Mutex
	ref int

	closeOnce sync.Once
	done      chan struct{}
}

// Dial connects to the realtime endpoint of baseURL (http, https, ws or wss)
// with the given session token.
func Dial(ctx context.Context, baseURL, token string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	}
	if !strings.HasSuffix(u.Path, "/realtime") {
		u.Path = strings.TrimSuffix(u.Path, "/") + "/realtime"
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, resp, err := dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("websocket dial: unauthorized")
		}
		return nil, fmt.Errorf("websocket dial: %w", err)
	}

	c := &Client{
		conn:   conn,
		events: make(chan ServerMessage, sendBuffer),
		done:   make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

// Events delivers server frames. It is closed when the connection ends.
func (c *Client) Events() <-chan ServerMessage {
	return c.events
}

func (c *Client) readLoop() {
	defer close(c.events)
	for {
		var msg ServerMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		select {
		case c.events <- msg:
		case <-c.done:
			return
		}
	}
}

// Subscribe asks for changes of collection, or of one document when id is
// set. It returns the frame ref; the server answers with an ack carrying it.
func (c *Client) Subscribe(collection, id string) (string, error) {
	return c.write(OpSubscribe, collection, id)
}

// Unsubscribe stops a subscription made with the same arguments.
func (c *Client) Unsubscribe(collection, id string) (string, error) {
	return c.write(OpUnsubscribe, collection, id)
}

// Ping asks the server for a pong frame.
func (c *Client) Ping() (string, error) {
	return c.write(OpPing, "", "")
}

func (c *Client) write(op, collection, id string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ref++
	ref := strconv.Itoa(c.ref)
	msg := ClientMessage{Op: op, Ref: ref, Collection: collection, ID: id}
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return "", err
	}
	if err := c.conn.WriteJSON(msg); err != nil {
		return "", fmt.Errorf("send %s: %w", op, err)
	}
	return ref, nil
}

// Close ends the connection.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		c.mu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
		c.mu.Unlock()
		err = c.conn.Close()
	})
	return err
}
