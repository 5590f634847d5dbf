// Command server hosts the interactive fractal explorer: it serves the
// browser client over HTTP and owns one explorer session per websocket
// connection. All evaluation happens server-side; clients only forward
// raw pointer and entry events and display the frames they get back.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	static := flag.String("static", "./static", "directory with index.html and main.wasm")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler())
	mux.Handle("/", http.FileServer(http.Dir(*static)))

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", *addr)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("httpServer: %w", err)
	}
	return nil
}

// websocketHandler upgrades the connection and hands it to a fresh
// session. Each session runs on its own goroutine and owns its state,
// so sessions never contend with each other.
func websocketHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}

		log.Printf("session from %s", r.RemoteAddr)
		s := newSession(c)
		if err := s.run(r.Context()); err != nil {
			log.Printf("session %s ended: %v", r.RemoteAddr, err)
		}
	}
}
