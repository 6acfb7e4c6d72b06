package main

import (
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenAddressInUse(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	logger := NewLogger(log.INFO, &syncBuffer{})
	_, err = Listen(taken.Addr().String(), NewService(logger), logger)
	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.EADDRINUSE)
}

func TestRunExitsWhenBindFails(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	host, port, err := net.SplitHostPort(taken.Addr().String())
	require.NoError(t, err)

	out := &syncBuffer{}
	code := run(Config{Host: host, Port: port, LogLevel: log.INFO}, NewLogger(log.INFO, out))

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "unable to bind to address '"+host+"' port '"+port+"'")
	assert.Contains(t, out.String(), "address already in use")
	assert.NotContains(t, out.String(), "server started")
}

func TestServeReturnsAfterClose(t *testing.T) {
	out := &syncBuffer{}
	logger := NewLogger(log.INFO, out)
	l, err := Listen("127.0.0.1:0", NewService(logger), logger)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "server started at "+l.Addr().String())
	assert.NotContains(t, out.String(), "127.0.0.1:0")

	done := make(chan struct{})
	go func() {
		l.Serve()
		close(done)
	}()

	require.NoError(t, l.Close())
	select {
	case <-done:
	case <-time.After(waitFor):
		t.Fatal("Serve did not return after Close")
	}
	assert.Zero(t, out.Count("failed to accept"))
}
