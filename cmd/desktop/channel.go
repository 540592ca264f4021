// Package main provides the desktop host process. The UI process talks
// to it over localhost: REST for one-shot calls and a WebSocket channel
// carrying the four-operation request/response contract.
package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	apperrors "github.com/shelfmark/backend/internal/errors"
	"github.com/shelfmark/backend/internal/logging"
	"github.com/shelfmark/backend/internal/models"
	"github.com/shelfmark/backend/internal/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Only allow connections from the local UI process.
		host := r.Host
		if i := strings.LastIndex(host, ":"); i >= 0 {
			host = host[:i]
		}
		return host == "localhost" || host == "127.0.0.1"
	},
}

// Channel actions, one per store operation exposed to the UI.
const (
	ActionGetAllBooks = "get-all-books"
	ActionAddBook     = "add-book"
	ActionDeleteBook  = "delete-book"
	ActionUpdateBook  = "update-book"
	ActionPing        = "ping"
)

// ChannelRequest is one inbound envelope. ID correlates the response.
type ChannelRequest struct {
	ID      string          `json:"id"`
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ChannelResponse is one outbound envelope.
type ChannelResponse struct {
	ID        string        `json:"id"`
	OK        bool          `json:"ok"`
	Result    interface{}   `json:"result,omitempty"`
	Error     *ChannelError `json:"error,omitempty"`
	Timestamp int64         `json:"timestamp"`
}

// ChannelError carries a store failure across the channel unchanged.
type ChannelError struct {
	Code    apperrors.ErrorCode `json:"code"`
	Message string              `json:"message"`
	Fields  map[string]string   `json:"fields,omitempty"`
}

// Channel relays UI requests to the store. Stateless apart from the
// connection itself: every request maps to exactly one store call and
// one response.
type Channel struct {
	store *store.Store
}

// NewChannel creates a Channel over the given store.
func NewChannel(s *store.Store) *Channel {
	return &Channel{store: s}
}

// Handler upgrades the connection and serves requests until the UI
// process disconnects.
func (c *Channel) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logging.Warn("channel upgrade failed", map[string]interface{}{"error": err.Error()})
			return
		}
		go c.serve(conn)
	}
}

// serve reads requests and writes responses. Writes are serialized with
// a mutex so concurrent store calls cannot interleave frames.
func (c *Channel) serve(conn *websocket.Conn) {
	defer conn.Close()

	var writeMu sync.Mutex
	send := func(resp ChannelResponse) {
		resp.Timestamp = time.Now().Unix()
		writeMu.Lock()
		defer writeMu.Unlock()
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteJSON(resp); err != nil {
			logging.Warn("channel write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Warn("channel read failed", map[string]interface{}{"error": err.Error()})
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req ChannelRequest
		if err := json.Unmarshal(message, &req); err != nil {
			send(ChannelResponse{OK: false, Error: &ChannelError{
				Code:    apperrors.ErrInvalid,
				Message: "invalid request envelope",
			}})
			continue
		}

		send(c.dispatch(req))
	}
}

// dispatch invokes the store operation named by the request.
func (c *Channel) dispatch(req ChannelRequest) ChannelResponse {
	resp := ChannelResponse{ID: req.ID}

	switch req.Action {
	case ActionGetAllBooks:
		resp.OK = true
		resp.Result = c.store.List()

	case ActionAddBook:
		var input models.BookInput
		if err := json.Unmarshal(req.Payload, &input); err != nil {
			return fail(resp, apperrors.New(apperrors.ErrInvalid, "invalid add-book payload"))
		}
		book, err := c.store.Add(input)
		if err != nil {
			return fail(resp, err)
		}
		resp.OK = true
		resp.Result = book

	case ActionDeleteBook:
		var id string
		if err := json.Unmarshal(req.Payload, &id); err != nil {
			return fail(resp, apperrors.New(apperrors.ErrInvalid, "invalid delete-book payload"))
		}
		// Deletion is idempotent and cannot fail on an absent id.
		if err := c.store.Delete(id); err != nil {
			return fail(resp, err)
		}
		resp.OK = true

	case ActionUpdateBook:
		var book models.Book
		if err := json.Unmarshal(req.Payload, &book); err != nil {
			return fail(resp, apperrors.New(apperrors.ErrInvalid, "invalid update-book payload"))
		}
		if err := c.store.Replace(book); err != nil {
			return fail(resp, err)
		}
		resp.OK = true

	case ActionPing:
		resp.OK = true
		resp.Result = "pong"

	default:
		return fail(resp, apperrors.New(apperrors.ErrInvalid, "unknown action "+req.Action))
	}

	return resp
}

// fail fills the response's error from err, keeping the code and any
// field-level messages intact.
func fail(resp ChannelResponse, err error) ChannelResponse {
	resp.OK = false
	if appErr, ok := err.(*apperrors.AppError); ok {
		resp.Error = &ChannelError{
			Code:    appErr.Code,
			Message: appErr.Message,
			Fields:  appErr.Fields,
		}
		return resp
	}
	resp.Error = &ChannelError{Code: apperrors.ErrInternal, Message: err.Error()}
	return resp
}
