package core

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/segmentio/encoding/json"
)

const (
	FlagsChangedEvent   = "flags-changed"
	DefaultWriteTimeout = 5 * time.Second
	clientQueueSize     = 8
)

type FlagBroadcasterInterface interface {
	BroadcastFlags(file *FlagFile)
	Handler(http.ResponseWriter, *http.Request)
}

// FlagsChanged is the message dev clients receive after a reload.
type FlagsChanged struct {
	Event    string   `json:"event"`
	WithCows bool     `json:"withCows"`
	Flags    []string `json:"flags"`
}

// flagClient owns one websocket. Only its write loop writes to conn.
type flagClient struct {
	conn *websocket.Conn
	send chan []byte
}

// FlagBroadcaster pushes reloaded flag state to connected dev clients.
// Broadcasting never waits on a client: each client has a small queue
// drained by its own writer, and a client whose queue is full or whose
// write misses the deadline is dropped.
type FlagBroadcaster struct {
	clients      map[*flagClient]bool
	lock         sync.Mutex
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
}

var NewFlagBroadcaster = func() FlagBroadcasterInterface {
	return newFlagBroadcaster(DefaultWriteTimeout)
}

func newFlagBroadcaster(writeTimeout time.Duration) *FlagBroadcaster {
	return &FlagBroadcaster{
		clients: make(map[*flagClient]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		writeTimeout: writeTimeout,
	}
}

func (fb *FlagBroadcaster) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := fb.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	c := &flagClient{conn: conn, send: make(chan []byte, clientQueueSize)}
	fb.lock.Lock()
	fb.clients[c] = true
	fb.lock.Unlock()

	go fb.writeLoop(c)
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				fb.drop(c)
				return
			}
		}
	}()
}

func (fb *FlagBroadcaster) writeLoop(c *flagClient) {
	for msg := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(fb.writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			fb.drop(c)
			return
		}
	}
}

func (fb *FlagBroadcaster) drop(c *flagClient) {
	fb.lock.Lock()
	fb.dropLocked(c)
	fb.lock.Unlock()
}

// dropLocked must be called with fb.lock held. It is safe to call twice.
func (fb *FlagBroadcaster) dropLocked(c *flagClient) {
	if !fb.clients[c] {
		return
	}
	delete(fb.clients, c)
	close(c.send)
	c.conn.Close()
}

func (fb *FlagBroadcaster) BroadcastFlags(file *FlagFile) {
	msg, err := json.Marshal(NewFlagsChanged(file))
	if err != nil {
		return
	}

	fb.lock.Lock()
	defer fb.lock.Unlock()

	for c := range fb.clients {
		select {
		case c.send <- msg:
		default:
			fb.dropLocked(c)
		}
	}
}

func NewFlagsChanged(file *FlagFile) FlagsChanged {
	event := FlagsChanged{Event: FlagsChangedEvent, Flags: []string{}}
	if file != nil {
		event.WithCows = file.BooleanDefault(FlagWithCows, false)
		event.Flags = file.Keys()
	}
	return event
}

func (fb *FlagBroadcaster) ClientCount() int {
	fb.lock.Lock()
	defer fb.lock.Unlock()
	return len(fb.clients)
}
