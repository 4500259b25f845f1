// Package ws streams store changes to clients over a websocket.
//
// A client connects to /realtime with a session token and sends subscribe and
// unsubscribe frames naming a collection and, optionally, a document ID:
//
//	{"op":"subscribe","ref":"1","collection":"settlements","id":"..."}
//
// Every matching change is pushed as a "change" frame. Settlement changes
// carry the derived progress and chat changes the subscriber's unread flag,
// so clients never recompute them.
package ws

import (
	"encoding/json"

	"github.com/mmynk/pointwallet/internal/realtime"
	"github.com/mmynk/pointwallet/internal/settlement"
)

// Client operations.
const (
	OpSubscribe   = "subscribe"
	OpUnsubscribe = "unsubscribe"
	OpPing        = "ping"
)

// Server frame types.
const (
	TypeAck    = "ack"
	TypeChange = "change"
	TypeError  = "error"
	TypePong   = "pong"
)

// ClientMessage is a frame sent by the client.
type ClientMessage struct {
	Op         string `json:"op"`
	Ref        string `json:"ref,omitempty"`
	Collection string `json:"collection,omitempty"`
	ID         string `json:"id,omitempty"`
}

// Topic identifies a subscription on one connection.
func (m ClientMessage) Topic() string {
	return Topic(m.Collection, m.ID)
}

// ServerMessage is a frame sent by the server.
type ServerMessage struct {
	Type       string               `json:"type"`
	Ref        string               `json:"ref,omitempty"`
	Topic      string               `json:"topic,omitempty"`
	Collection string               `json:"collection,omitempty"`
	ID         string               `json:"id,omitempty"`
	Kind       realtime.ChangeKind  `json:"kind,omitempty"`
	Doc        json.RawMessage      `json:"doc,omitempty"`
	Progress   *settlement.Progress `json:"progress,omitempty"`
	Unread     *bool                `json:"unread,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// Topic joins a collection and an optional document ID.
func Topic(collection, id string) string {
	if id == "" {
		return collection
	}
	return collection + ":" + id
}

var subscribable = map[string]bool{
	realtime.CollectionUsers:       true,
	realtime.CollectionSettlements: true,
	realtime.CollectionChats:       true,
	realtime.CollectionMessages:    true,
	realtime.CollectionRequests:    true,
}
