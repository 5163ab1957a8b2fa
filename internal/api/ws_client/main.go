package main

import (
	"flag"
	"log"
	"net/url"
	"os"
	"os/signal"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

type Event struct {
	Type    string         `json:"type"`
	ScoutID string         `json:"scout_id"`
	At      string         `json:"at"`
	Payload map[string]any `json:"payload,omitempty"`
}

func main() {
	addr := flag.String("addr", "ws://localhost:8080/api/v1/ws", "event stream address")
	token := flag.String("token", os.Getenv("SCOUTQUEST_TOKEN"), "session token")
	flag.Parse()

	u, err := url.Parse(*addr)
	if err != nil {
		log.Fatal("parse address:", err)
	}
	q := u.Query()
	q.Set("access_token", *token)
	u.RawQuery = q.Encode()

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal("dial:", err)
	}
	defer conn.Close()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	messageQueue := make(chan Event)

	go func() {
		defer close(messageQueue)
		for {
			_, p, err := conn.ReadMessage()
			if err != nil {
				log.Println("read error:", err)
				return
			}

			var event Event
			if err := json.Unmarshal(p, &event); err != nil {
				log.Println("json unmarshal error:", err)
				continue
			}
			messageQueue <- event
		}
	}()

	for {
		select {
		case event, ok := <-messageQueue:
			if !ok {
				return
			}
			out, _ := json.MarshalIndent(event, "", "  ")
			log.Printf("Received:\n%s\n", out)

		case <-interrupt:
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}
