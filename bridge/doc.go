// Package bridge manages the lifecycle of multiplexed QUIC connections and
// their streams, and delivers everything that happens on them to a
// callback-driven consumer.
//
// Network I/O runs on background goroutines; the consumer observes it
// through typed handler interfaces (ConnHandler, StreamHandler). A Queue can
// wrap any handler so that all callbacks run on a single goroutine, which is
// what a single-threaded host environment expects.
//
// # Connections
//
// A Client dials a server and produces a Conn. The Conn runs two accept
// goroutines (bidirectional and unidirectional stream offers) and a close
// watcher. Every accepted offer is wrapped into a Pairing and handed to the
// consumer, which claims it exactly once:
//
//	client := &bridge.Client{Logger: slog.Default()}
//	conn, err := client.DialQUIC(ctx, "localhost:4433", handler)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close(0, nil)
//
// # Streams
//
// Claiming a Pairing starts the stream's read loop. Received chunks arrive
// via StreamHandler.OnData in read order; the final event for any stream is
// always a single StreamHandler.OnClose.
package bridge
