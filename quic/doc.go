// Package quic provides the QUIC transport abstraction used by the bridge.
//
// It defines interfaces and types that abstract QUIC connections and
// streams, allowing the bridge package to work with different transport
// implementations without direct dependencies.
//
// # Interfaces
//
//   - Connection: a QUIC connection with stream management
//   - Stream: bidirectional QUIC stream for reading and writing
//   - SendStream: unidirectional QUIC stream for sending data
//   - ReceiveStream: unidirectional QUIC stream for receiving data
//   - Listener: accepts incoming QUIC connections
//
// # Implementations
//
// The quicgo subpackage wraps github.com/quic-go/quic-go, and the
// webtransport packages produce the same Connection abstraction over
// a WebTransport session.
//
// # Basic Usage
//
// To dial a QUIC connection:
//
//	conn, err := quicgo.DialAddrEarly(ctx, "localhost:4433", tlsConfig, quicConfig)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.CloseWithError(0, "done")
package quic
