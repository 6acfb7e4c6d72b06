package main

// websocket.Upgrader only speaks http.ResponseWriter, but the listener hands
// out raw TCP streams. handshakeWriter bridges the two: it reads the upgrade
// request straight off the stream and lets the upgrader hijack it.

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/gorilla/websocket"
)

type handshakeWriter struct {
	conn     net.Conn
	brw      *bufio.ReadWriter
	header   http.Header
	status   int
	body     bytes.Buffer
	hijacked bool
}

func newHandshakeWriter(conn net.Conn) *handshakeWriter {
	return &handshakeWriter{
		conn:   conn,
		brw:    bufio.NewReadWriter(bufio.NewReader(conn), bufio.NewWriter(conn)),
		header: make(http.Header),
	}
}

func (w *handshakeWriter) Header() http.Header {
	return w.header
}

func (w *handshakeWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *handshakeWriter) Write(p []byte) (int, error) {
	w.WriteHeader(http.StatusOK)
	return w.body.Write(p)
}

func (w *handshakeWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if w.hijacked {
		return nil, nil, errors.New("connection already hijacked")
	}
	w.hijacked = true
	return w.conn, w.brw, nil
}

// reject writes whatever error response the upgrader produced. It is a
// no-op once the stream has been hijacked.
func (w *handshakeWriter) reject(req *http.Request) error {
	if w.hijacked || w.status == 0 {
		return nil
	}
	resp := &http.Response{
		StatusCode:    w.status,
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        w.header,
		Body:          io.NopCloser(&w.body),
		ContentLength: int64(w.body.Len()),
		Close:         true,
		Request:       req,
	}
	return resp.Write(w.conn)
}

// upgradeConn runs the websocket handshake on a freshly accepted stream.
// On failure the caller still owns conn and must close it.
func upgradeConn(u *websocket.Upgrader, conn net.Conn) (*websocket.Conn, error) {
	w := newHandshakeWriter(conn)

	req, err := http.ReadRequest(w.brw.Reader)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, withRejectErr(fmt.Errorf("reading upgrade request: %w", err), w.reject(nil))
	}

	ws, err := u.Upgrade(w, req, nil)
	if err != nil {
		return nil, withRejectErr(err, w.reject(req))
	}
	return ws, nil
}

func withRejectErr(err, rejectErr error) error {
	if rejectErr == nil {
		return err
	}
	return fmt.Errorf("%w (writing rejection: %v)", err, rejectErr)
}
