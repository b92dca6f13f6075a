package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/milk9111/sandkeep/logger"
	"github.com/milk9111/sandkeep/telemetry"
)

// subscribe dials the telemetry endpoint and decodes snapshots until the
// connection drops or ctx is cancelled. The channel is closed on exit.
func subscribe(ctx context.Context, url string) (<-chan telemetry.Snapshot, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("radar: dial %s: %w", url, err)
	}

	out := make(chan telemetry.Snapshot, 8)
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()
	go func() {
		defer close(out)
		defer conn.Close()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				if ctx.Err() == nil {
					logger.Log.WithError(err).Debug("telemetry stream closed")
				}
				return
			}
			var s telemetry.Snapshot
			if err := json.Unmarshal(data, &s); err != nil {
				logger.Log.WithError(err).Warn("bad snapshot")
				continue
			}
			select {
			case out <- s:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
