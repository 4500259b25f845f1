package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mmynk/pointwallet/internal/auth"
	"github.com/mmynk/pointwallet/internal/chat"
	"github.com/mmynk/pointwallet/internal/middleware"
	"github.com/mmynk/pointwallet/internal/models"
	"github.com/mmynk/pointwallet/internal/realtime"
	"github.com/mmynk/pointwallet/internal/settlement"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Subscriber is the change feed of the document store.
type Subscriber interface {
	Subscribe(ctx context.Context, q realtime.Query, handler realtime.Handler) *realtime.Subscription
}

// TokenValidator turns a session token into claims.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// Server upgrades authenticated HTTP requests to change streams.
type Server struct {
	feed     Subscriber
	tokens   TokenValidator
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a websocket server over feed.
func NewServer(feed Subscriber, tokens TokenValidator, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		feed:   feed,
		tokens: tokens,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browsers are authenticated by token, not by cookie.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) session(r *http.Request) (auth.Session, error) {
	// Browsers cannot set headers on a websocket handshake.
	token := r.URL.Query().Get("token")
	if token == "" {
		var err error
		if token, err = middleware.BearerToken(r.Header.Get("Authorization")); err != nil {
			return auth.Session{}, err
		}
	}
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return auth.Session{}, err
	}
	return claims.Session(), nil
}

// ServeHTTP authenticates the request and serves the connection until the
// client disconnects.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client.
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &connection{
		server:  s,
		conn:    conn,
		session: sess,
		send:    make(chan ServerMessage, sendBuffer),
		subs:    make(map[string]*realtime.Subscription),
		closed:  make(chan struct{}),
	}
	s.logger.Info("realtime client connected", "user_id", sess.UserID, "remote_addr", r.RemoteAddr)
	go c.writeLoop()
	c.readLoop(r.Context())
	c.close()
	s.logger.Info("realtime client disconnected", "user_id", sess.UserID)
}

type connection struct {
	server  *Server
	conn    *websocket.Conn
	session auth.Session
	send    chan ServerMessage

	mu   sync.Mutex
	subs map[string]*realtime.Subscription

	closeOnce sync.Once
	closed    chan struct{}
}

func (c *connection) readLoop(ctx context.Context) {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.server.logger.Debug("realtime read failed", "user_id", c.session.UserID, "error", err)
			}
			return
		}
		c.handle(ctx, msg)
	}
}

func (c *connection) handle(ctx context.Context, msg ClientMessage) {
	switch msg.Op {
	case OpPing:
		c.push(ServerMessage{Type: TypePong, Ref: msg.Ref})
	case OpSubscribe:
		if err := c.subscribe(ctx, msg); err != nil {
			c.push(ServerMessage{Type: TypeError, Ref: msg.Ref, Topic: msg.Topic(), Error: err.Error()})
			return
		}
		c.push(ServerMessage{Type: TypeAck, Ref: msg.Ref, Topic: msg.Topic()})
	case OpUnsubscribe:
		c.unsubscribe(msg.Topic())
		c.push(ServerMessage{Type: TypeAck, Ref: msg.Ref, Topic: msg.Topic()})
	default:
		c.push(ServerMessage{Type: TypeError, Ref: msg.Ref, Error: fmt.Sprintf("unknown op %q", msg.Op)})
	}
}

func (c *connection) subscribe(ctx context.Context, msg ClientMessage) error {
	if !subscribable[msg.Collection] {
		return fmt.Errorf("unknown collection %q", msg.Collection)
	}
	topic := msg.Topic()

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.subs[topic]; ok {
		return nil
	}
	// Delivery is always restricted to the documents the user may see.
	q := realtime.Query{Collection: msg.Collection, DocID: msg.ID, UserID: c.session.UserID}
	c.subs[topic] = c.server.feed.Subscribe(ctx, q, func(ch realtime.Change) {
		out, err := Annotate(ch, c.session.UserID)
		if err != nil {
			c.server.logger.Error("failed to encode change", "collection", ch.Collection, "doc", ch.DocID, "error", err)
			return
		}
		out.Topic = topic
		c.push(out)
	})
	return nil
}

func (c *connection) unsubscribe(topic string) {
	c.mu.Lock()
	sub, ok := c.subs[topic]
	delete(c.subs, topic)
	c.mu.Unlock()
	if ok {
		sub.Unsubscribe()
	}
}

// push queues msg without blocking. A client that cannot keep up is dropped.
func (c *connection) push(msg ServerMessage) {
	select {
	case <-c.closed:
		return
	default:
	}
	select {
	case c.send <- msg:
	default:
		c.server.logger.Warn("realtime client too slow, closing", "user_id", c.session.UserID)
		go c.close()
	}
}

func (c *connection) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-c.closed:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				go c.close()
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				go c.close()
				return
			}
		}
	}
}

func (c *connection) close() {
	c.closeOnce.Do(func() {
		close(c.closed)
		c.mu.Lock()
		subs := c.subs
		c.subs = map[string]*realtime.Subscription{}
		c.mu.Unlock()
		for _, sub := range subs {
			sub.Unsubscribe()
		}
		_ = c.conn.Close()
	})
}

// ErrUnsupportedDoc is returned by Annotate for a document it cannot encode.
var ErrUnsupportedDoc = errors.New("unsupported document")

// Annotate builds the change frame for userID, attaching the state derived
// from the document: progress for settlements, unread for chats.
func Annotate(ch realtime.Change, userID string) (ServerMessage, error) {
	out := ServerMessage{
		Type:       TypeChange,
		Collection: ch.Collection,
		ID:         ch.DocID,
		Kind:       ch.Kind,
	}
	if ch.Doc == nil {
		return out, nil
	}
	doc, err := json.Marshal(ch.Doc)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrUnsupportedDoc, err)
	}
	out.Doc = doc

	switch d := ch.Doc.(type) {
	case *models.Settlement:
		p := settlement.ProgressOf(d)
		out.Progress = &p
	case *models.Chat:
		unread := chat.IsUnread(d, userID)
		out.Unread = &unread
	}
	return out, nil
}
