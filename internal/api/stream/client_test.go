package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ws "github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ecoquest/internal/session"
)

func serve(t *testing.T, cache *session.Cache, s session.Session) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := ws.Accept(w, r, nil)
		if err != nil {
			return
		}
		NewClient(conn, cache, s, zap.NewNop()).Run(r.Context())
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func readEvent(t *testing.T, ctx context.Context, conn *ws.Conn) session.Event {
	t.Helper()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var e session.Event
	require.NoError(t, json.Unmarshal(data, &e))
	return e
}

func TestClient_StreamsOwnSessionUntilSignOut(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cache := session.NewCache()
	mine := session.Session{ID: "s1", AccountID: "admin-1", Role: "admin"}
	cache.Populate(mine)

	conn, _, err := ws.Dial(ctx, serve(t, cache, mine), nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	first := readEvent(t, ctx, conn)
	assert.Equal(t, session.EventSignedIn, first.Kind)
	assert.Equal(t, "s1", first.Session.ID)

	// the first frame is queued after subscribing, so the client is now listening
	cache.Populate(session.Session{ID: "other", AccountID: "admin-2"})
	cache.Clear("other")
	cache.Populate(session.Session{ID: "s2", AccountID: "admin-1"})

	second := readEvent(t, ctx, conn)
	assert.Equal(t, "s2", second.Session.ID, "events of other accounts are filtered out")

	cache.Clear("s1")
	last := readEvent(t, ctx, conn)
	assert.Equal(t, session.EventSignedOut, last.Kind)
	assert.Equal(t, "s1", last.Session.ID)

	_, _, err = conn.Read(ctx)
	assert.Equal(t, ws.StatusNormalClosure, ws.CloseStatus(err))
}
