package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

// Broadcast and the keepalive ping write to the same connection from
// different goroutines; both must funnel through the client's writer.
func TestBroadcastAndPingShareOneWriter(t *testing.T) {
	up := websocket.Upgrader{}
	hub := NewRealtimeHub()

	var cl *WSClient
	ready := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		cl = &WSClient{UserID: 7, Conn: conn}
		hub.Register(cl)
		close(ready)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()
	<-ready

	const perWorker = 10
	const workers = 4

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for i := 0; i < workers*perWorker; i++ {
			if _, _, err := client.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				hub.Broadcast(7, map[string]string{"type": "invitation_received"})
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if err := cl.Write(websocket.PingMessage, nil); err != nil {
					t.Errorf("ping: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
	<-drained
	hub.Unregister(cl)
}
