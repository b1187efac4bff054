// Package status pushes conversion progress to interested browsers over a
// websocket. One hub, any number of clients; the latest message is
// replayed to clients that connect mid-conversion.
package status

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	INFO = iota
	ERROR
	STAGE
)

// Stages a conversion moves through, in order.
const (
	STAGE_LOAD    = "load"
	STAGE_COMPILE = "compile"
	STAGE_EMIT    = "emit"
	STAGE_PACKAGE = "package"
)

type status struct {
	Message string
	Stage   string
	Time    time.Time
	Type    int
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func (c *client) writePump() {
	ticker := time.NewTicker(time.Second * 30)
	defer func() {
		ticker.Stop()
		unregisterClient(c)
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(40 * time.Second)); err != nil {
				panic(err)
			}
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("[status] ws write msg error: %v", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(40 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[status] ws write ping error: %v", err)
				return
			}
		}
	}
}

func NewClient(conn *websocket.Conn) *client {
	c := &client{conn: conn, send: make(chan []byte, 32)}
	registerClient(c)
	go c.writePump()
	globalLock.Lock()
	defer globalLock.Unlock()
	if lastMessage != nil {
		c.send <- lastMessage
	}
	return c
}

var statusBroadcast chan *status
var broadcastList map[*client]bool
var globalLock sync.Mutex
var lastMessage []byte = nil

func registerClient(c *client) {
	globalLock.Lock()
	defer globalLock.Unlock()
	broadcastList[c] = true
}

func unregisterClient(c *client) {
	globalLock.Lock()
	defer globalLock.Unlock()
	delete(broadcastList, c)
}

func init() {
	statusBroadcast = make(chan *status, 16)
	broadcastList = make(map[*client]bool)
	go func() {
		for s := range statusBroadcast {
			data, err := json.Marshal(s)
			if err != nil {
				panic(err)
			}
			globalLock.Lock()
			lastMessage = data
			for c := range broadcastList {
				select {
				case c.send <- data:
				default:
					// slow client; it will be dropped by its own pump
				}
			}
			globalLock.Unlock()
		}
	}()
}

func push(msg string, stage string, _type int) {
	statusBroadcast <- &status{
		Message: msg,
		Stage:   stage,
		Time:    time.Now(),
		Type:    _type,
	}
}

func Info(format string, a ...interface{}) {
	push(fmt.Sprintf(format, a...), "", INFO)
}

func Error(format string, a ...interface{}) {
	push(fmt.Sprintf(format, a...), "", ERROR)
}

func Stage(stage string, format string, a ...interface{}) {
	push(fmt.Sprintf(format, a...), stage, STAGE)
}
