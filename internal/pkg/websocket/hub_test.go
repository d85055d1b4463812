package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gws "github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/intlportal/internal/app/models"
)

type fakeSource struct {
	ch chan []models.Announcement
}

func (f *fakeSource) SubscribeAnnouncements(int) (<-chan []models.Announcement, func()) {
	return f.ch, func() {}
}

func newFeedServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		c.Set("userID", "3")
		c.Next()
	}, NewHandler(hub, zerolog.Nop()).HandleConnection)
	return httptest.NewServer(r)
}

func TestFeed_RelaysAnnouncementUpdates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zerolog.Nop())
	go hub.Run(ctx)

	srv := newFeedServer(t, hub)
	defer srv.Close()

	conn, _, err := gws.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ClientsCount(TopicAnnouncements) == 1 }, time.Second, 10*time.Millisecond)

	source := &fakeSource{ch: make(chan []models.Announcement, 1)}
	NewAnnouncementRelay(source, hub, zerolog.Nop()).Start(ctx)
	source.ch <- []models.Announcement{{ID: "1", Title: "New Semester Started", Author: "Academic Office"}}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type    string                `json:"type"`
		Topic   string                `json:"topic"`
		Payload []models.Announcement `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, AnnouncementsUpdated, msg.Type)
	assert.Equal(t, TopicAnnouncements, msg.Topic)
	require.Len(t, msg.Payload, 1)
	assert.Equal(t, "New Semester Started", msg.Payload[0].Title)
}

func TestFeed_RejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", NewHandler(NewHub(zerolog.Nop()), zerolog.Nop()).HandleConnection)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ws", nil))
	assert.Equal(t, 401, w.Code)
}

func TestHub_PublishAfterStopDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(zerolog.Nop())
	stopped := make(chan struct{})
	go func() { hub.Run(ctx); close(stopped) }()
	cancel()
	<-stopped

	done := make(chan struct{})
	go func() {
		for i := 0; i < 32; i++ {
			hub.Publish(&Message{Type: AnnouncementsUpdated, Topic: TopicAnnouncements})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked after hub stopped")
	}
}
