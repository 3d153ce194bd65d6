package net

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/gorilla/websocket"

	"PolyBoard/internal/exchange"
	"PolyBoard/internal/state"
)

// ViewerURL turns a share link (polyboard://host:port) into a websocket URL.
func ViewerURL(link, scheme string) (string, error) {
	if !strings.HasPrefix(link, scheme) {
		return "", fmt.Errorf("not a share link: %q", link)
	}
	address := strings.TrimSuffix(strings.TrimPrefix(link, scheme), "/")
	if address == "" {
		return "", fmt.Errorf("share link %q has no address", link)
	}
	return "ws://" + address + SharePath, nil
}

// Follow connects to a host and calls apply for each snapshot until ctx is
// cancelled or the host goes away.
func Follow(ctx context.Context, url string, logger *log.Logger, apply func(rev uint64, vs []state.Vertex)) error {
	if logger == nil {
		logger = log.Default()
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", url, err)
	}
	defer conn.Close()
	logger.Printf("[VIEW] Connected to %s", url)

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read snapshot: %w", err)
		}
		var snap Snapshot
		if err := json.Unmarshal(data, &snap); err != nil || snap.Type != snapshotType {
			logger.Printf("[VIEW] Ignoring unexpected message: %v", err)
			continue
		}
		vs, err := exchange.Decode(snap.Points)
		if err != nil {
			logger.Printf("[VIEW] Bad snapshot %d: %v", snap.Revision, err)
			continue
		}
		apply(snap.Revision, vs)
	}
}
