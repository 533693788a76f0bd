package stream

import (
	"context"
	"encoding/json"
	"time"

	ws "github.com/coder/websocket"
	"go.uber.org/zap"

	"ecoquest/internal/session"
)

const (
	sendBufferSize = 16
	pingInterval   = 30 * time.Second
	writeTimeout   = 10 * time.Second
)

// Client streams session events of one account over a websocket.
type Client struct {
	conn    *ws.Conn
	cache   *session.Cache
	session session.Session
	send    chan session.Event
	log     *zap.Logger
}

func NewClient(conn *ws.Conn, cache *session.Cache, s session.Session, log *zap.Logger) *Client {
	return &Client{
		conn:    conn,
		cache:   cache,
		session: s,
		send:    make(chan session.Event, sendBufferSize),
		log:     log,
	}
}

// Run subscribes to the cache, sends the current session and then every change
// for the same account. It returns once the client's own session ends or the
// connection drops, and always unsubscribes.
func (c *Client) Run(ctx context.Context) {
	unsubscribe := c.cache.Subscribe(c.enqueue)
	defer unsubscribe()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go c.readPump(ctx, cancel)

	c.enqueue(session.Event{Kind: session.EventSignedIn, Session: c.session})
	if err := c.writePump(ctx); err != nil {
		c.log.Debug("session stream closed", zap.String("session_id", c.session.ID), zap.Error(err))
		c.conn.Close(ws.StatusInternalError, "stream error")
		return
	}
	c.conn.Close(ws.StatusNormalClosure, "signed out")
}

// enqueue never blocks the cache. Slow clients lose events.
func (c *Client) enqueue(e session.Event) {
	if e.Session.AccountID != c.session.AccountID {
		return
	}
	select {
	case c.send <- e:
	default:
		c.log.Warn("session stream buffer full", zap.String("session_id", c.session.ID))
	}
}

// readPump reads and discards all incoming messages. It returns on error
// (connection close), which triggers cleanup.
func (c *Client) readPump(ctx context.Context, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			return
		}
	}
}

// writePump returns nil after delivering the sign-out of the client's own session.
func (c *Client) writePump(ctx context.Context) error {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case e := <-c.send:
			msg, err := json.Marshal(e)
			if err != nil {
				return err
			}
			wctx, cancel := context.WithTimeout(ctx, writeTimeout)
			err = c.conn.Write(wctx, ws.MessageText, msg)
			cancel()
			if err != nil {
				return err
			}
			if e.Kind == session.EventSignedOut && e.Session.ID == c.session.ID {
				return nil
			}
		case <-ticker.C:
			if err := c.conn.Ping(ctx); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
