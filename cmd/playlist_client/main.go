package main

// playlist_client sends one playlist update to a running listener and
// closes the connection cleanly.

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/gommon/log"
	flag "github.com/spf13/pflag"
)

type options struct {
	url         string
	currentTime string
	playlist    []string
	camelCase   bool
	raw         string
}

func buildPayload(opts options) ([]byte, error) {
	if opts.raw != "" {
		return []byte(opts.raw), nil
	}

	timeKey, playlistKey := "current_time", "playlist_contents"
	if opts.camelCase {
		timeKey, playlistKey = "currentTime", "playlistContents"
	}
	return json.Marshal(map[string]string{
		timeKey:     opts.currentTime,
		playlistKey: strings.Join(opts.playlist, ","),
	})
}

func send(opts options) error {
	payload, err := buildPayload(opts)
	if err != nil {
		return fmt.Errorf("building payload: %w", err)
	}

	conn, _, err := websocket.DefaultDialer.Dial(opts.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", opts.url, err)
	}
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("sending payload: %w", err)
	}

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteMessage(websocket.CloseMessage, closeMsg); err != nil {
		return fmt.Errorf("closing: %w", err)
	}

	// wait for the server's close reply so the close is clean on both ends
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("waiting for close: %w", err)
		}
	}
}

func main() {
	var opts options
	flag.StringVar(&opts.url, "url", "ws://localhost:27745", "listener address")
	flag.StringVar(&opts.currentTime, "time", time.Now().Format("15:04:05"), "current_time value to send")
	flag.StringSliceVar(&opts.playlist, "playlist", nil, "playlist entries, comma separated")
	flag.BoolVar(&opts.camelCase, "camel", false, "use camelCase field names")
	flag.StringVar(&opts.raw, "raw", "", "send this text verbatim instead of a record")
	flag.Parse()

	logger := log.New("playlist_client")
	logger.SetHeader("${time_rfc3339} ${level}")

	if err := send(opts); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	logger.Infof("sent update to %s", opts.url)
}
