package main

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/gommon/log"
)

// Listener accepts TCP streams and serves each one on its own goroutine.
// It does not track the goroutines it starts.
type Listener struct {
	addr      string
	ln        net.Listener
	upgrader  websocket.Upgrader
	service   Service
	logger    *log.Logger
	startedAt time.Time
}

func Listen(addr string, service Service, logger *log.Logger) (*Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	logger.Infof("server started at %s", ln.Addr())

	return &Listener{
		addr: addr,
		ln:   ln,
		upgrader: websocket.Upgrader{
			// clients are not browsers, there is no origin to enforce
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		service:   service,
		logger:    logger,
		startedAt: time.Now(),
	}, nil
}

func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// Serve blocks accepting connections until Close is called. A failed
// accept is logged and skipped.
func (l *Listener) Serve() {
	for {
		conn, err := l.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			l.logger.Errorf("failed to accept tcp conn err: %v", err)
			continue
		}
		go l.handleConn(conn)
	}
}

// Close stops accepting. Connections already handed off keep running.
func (l *Listener) Close() error {
	return l.ln.Close()
}
