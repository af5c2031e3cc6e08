package websocketPkg

import (
	"context"
	"image"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ladaniprem/Emotion-Based-Music-Recommendation-WebApp/internal/detector"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modelServer(t *testing.T, reply func(msg []byte) string) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, []byte(reply(msg))); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func newClient(t *testing.T, urls map[Service]string) IWebsocket {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := DefaultConfig()
	cfg.URLs = urls
	cfg.PingInterval = 0
	c := NewAIWebSocketClient(cfg, logger)
	t.Cleanup(c.CloseConnections)
	return c
}

func TestLandmarkClient(t *testing.T) {
	t.Parallel()

	url := modelServer(t, func([]byte) string {
		return `{"landmarks":[[1,2],[3.5,4]]}`
	})
	client := NewLandmarkClient(newClient(t, map[Service]string{LandmarkService: url}))

	require.NoError(t, client.Ping(context.Background()))
	points, err := client.DetectLandmarks(context.Background(), []byte("png"))
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 3.5, points[1].X)
	assert.Equal(t, 4.0, points[1].Y)
}

func TestLandmarkClient_RemoteError(t *testing.T) {
	t.Parallel()

	url := modelServer(t, func([]byte) string { return `{"error":"no face"}` })
	client := NewLandmarkClient(newClient(t, map[Service]string{LandmarkService: url}))

	_, err := client.DetectLandmarks(context.Background(), []byte("png"))
	assert.EqualError(t, err, "no face")
}

func TestEmotionClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		reply   string
		label   string
		score   float64
		wantErr error
	}{
		{"top emotion", `{"emotion":"angry","score":0.61}`, "angry", 0.61, nil},
		{"null emotion", `{"emotion":null,"score":null}`, "", 0, detector.ErrNoEmotion},
		{"missing score", `{"emotion":"sad"}`, "", 0, detector.ErrNoEmotion},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			url := modelServer(t, func(msg []byte) string {
				if len(msg) == 0 {
					return `{"error":"empty frame"}`
				}
				return tt.reply
			})
			client := NewEmotionClient(newClient(t, map[Service]string{EmotionService: url}))
			require.NoError(t, client.Ready(context.Background()))

			label, score, err := client.Predict(context.Background(), image.NewGray(image.Rect(0, 0, 8, 8)))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.label, label)
			assert.Equal(t, tt.score, score)
		})
	}
}

func TestRoundTrip_NotConfigured(t *testing.T) {
	t.Parallel()

	c := newClient(t, map[Service]string{EmotionService: ""})
	_, err := c.RoundTrip(context.Background(), EmotionService, []byte("x"))
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, NewEmotionClient(c).Ready(context.Background()), ErrNotConfigured)
}

func TestRoundTrip_RedialsAfterServerDrop(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		if calls.Add(1) == 1 {
			// Drop the first connection without replying.
			return
		}
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := newClient(t, map[Service]string{EmotionService: "ws" + strings.TrimPrefix(srv.URL, "http")})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := c.RoundTrip(ctx, EmotionService, []byte("a"))
	require.Error(t, err)
	assert.False(t, c.IsConnected(EmotionService))

	reply, err := c.RoundTrip(ctx, EmotionService, []byte("b"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(reply))
}
