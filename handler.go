package main

import (
	"errors"
	"net"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var errNoPeerAddr = errors.New("no remote address on connection")

// handleConn owns conn for its whole life: resolve the peer, upgrade, then
// read frames until the peer goes away. Nothing is ever written back apart
// from the handshake.
func (l *Listener) handleConn(conn net.Conn) {
	connID := uuid.New().String()
	defer conn.Close()
	defer l.logger.Debugf("[%s] connection closed", connID)

	peer, err := peerAddr(conn)
	if err != nil {
		l.logger.Errorf("[%s] failed to resolve peer address err: %v", connID, err)
		return
	}

	ws, err := upgradeConn(&l.upgrader, conn)
	if err != nil {
		l.logger.Errorf("[%s] failed to upgrade ws for %s err: %v", connID, peer, err)
		return
	}
	defer ws.Close()
	l.logger.Infof("[%s] new peer: %s", connID, peer)

	for {
		_, payload, err := ws.ReadMessage()
		if err != nil {
			if !isCleanClose(err) {
				l.logger.Errorf("[%s] failed reading message err: %v", connID, err)
			}
			return
		}

		rec, err := DecodeRecord(payload)
		if err != nil {
			// a bad message only costs that message
			l.logger.Warnf("[%s] failed to parse message err: %v", connID, err)
			continue
		}
		l.service.RecordReceived(connID, rec)
	}
}

func peerAddr(conn net.Conn) (string, error) {
	addr := conn.RemoteAddr()
	if addr == nil {
		return "", errNoPeerAddr
	}
	return addr.String(), nil
}

// isCleanClose reports whether err is the peer finishing the close
// handshake. gorilla reports a dropped stream as CloseAbnormalClosure,
// which is not clean.
func isCleanClose(err error) bool {
	var closeErr *websocket.CloseError
	return errors.As(err, &closeErr) && closeErr.Code != websocket.CloseAbnormalClosure
}
