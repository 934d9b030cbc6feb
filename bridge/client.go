package bridge

import (
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okdaichi/quicbridge/quic"
	"github.com/okdaichi/quicbridge/quic/quicgo"
	"github.com/okdaichi/quicbridge/webtransport"
	"github.com/okdaichi/quicbridge/webtransport/webtransportgo"
)

// Client establishes bridge connections over raw QUIC or WebTransport.
//
// A Client can dial multiple servers and maintain multiple active
// connections. Connections are tracked automatically; when the client
// shuts down, all active connections are closed. The Client replaces any
// process-wide runtime state: construct it explicitly, hold it for the
// program's lifetime, and Close it at shutdown.
type Client struct {
	// TLSConfig is the security context for dialing. See ClientTLSConfig
	// for building one from raw credential material.
	TLSConfig *tls.Config

	// QUICConfig overrides the transport configuration. When nil, a
	// default with a keep-alive interval is used.
	QUICConfig *quic.Config

	// Config holds bridge-level options.
	Config *Config

	// DialQUICFunc overrides the raw QUIC dial function.
	DialQUICFunc quic.DialAddrFunc

	// DialWebTransportFunc overrides the WebTransport dial function.
	DialWebTransportFunc webtransport.DialAddrFunc

	// Logger receives lifecycle events. When nil, logging is discarded.
	Logger *slog.Logger

	initOnce sync.Once

	connMu      sync.RWMutex
	activeConns map[*Conn]struct{}

	inShutdown atomic.Bool
	doneChan   chan struct{}
}

func (c *Client) init() {
	c.initOnce.Do(func() {
		c.activeConns = make(map[*Conn]struct{})
		c.doneChan = make(chan struct{}, 1)

		if c.Logger != nil {
			c.Logger.Info("client initialized")
		}
	})
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (c *Client) dialTimeout() time.Duration {
	if c.Config != nil && c.Config.DialTimeout != 0 {
		return c.Config.DialTimeout
	}
	return 5 * time.Second
}

func (c *Client) quicConfig() *quic.Config {
	if c.QUICConfig != nil {
		return c.QUICConfig
	}

	keepAlive := time.Second
	if c.Config != nil && c.Config.KeepAlivePeriod != 0 {
		keepAlive = c.Config.KeepAlivePeriod
	}
	return &quic.Config{
		KeepAlivePeriod: keepAlive,
	}
}

// Dial connects to the URL and hands connection events to handler. The
// scheme selects the transport: "quic" dials raw QUIC, "https" dials
// WebTransport.
func (c *Client) Dial(ctx context.Context, urlStr string, handler ConnHandler) (*Conn, error) {
	logger := c.logger()

	if c.shuttingDown() {
		logger.Warn("dial rejected: client shutting down")
		return nil, ErrClientClosed
	}
	c.init()

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		logger.Error("URL parsing failed", "error", err)
		return nil, err
	}

	switch parsedURL.Scheme {
	case "quic":
		return c.DialQUIC(ctx, parsedURL.Host, handler)
	case "https":
		return c.DialWebTransport(ctx, parsedURL.Host+parsedURL.Path, handler)
	default:
		logger.Error("unsupported URL scheme", "scheme", parsedURL.Scheme)
		return nil, ErrInvalidScheme
	}
}

// dialQUICFunc selects the raw QUIC dial function: the caller's override,
// a full-handshake dial when 0-RTT is disabled, or the 0-RTT dial.
func (c *Client) dialQUICFunc() quic.DialAddrFunc {
	if c.DialQUICFunc != nil {
		return c.DialQUICFunc
	}
	if c.Config != nil && c.Config.Disable0RTT {
		return quicgo.DialAddr
	}
	return quicgo.DialAddrEarly
}

// DialQUIC establishes a raw QUIC connection to addr, attempting 0-RTT
// when the session allows it (see Config.Disable0RTT). Handshake failures
// are returned synchronously; no handle is produced.
func (c *Client) DialQUIC(ctx context.Context, addr string, handler ConnHandler) (*Conn, error) {
	clientLogger := c.logger().With("addr", addr)

	if c.shuttingDown() {
		clientLogger.Warn("QUIC dial rejected: client shutting down")
		return nil, ErrClientClosed
	}
	c.init()

	dialCtx, cancelDial := context.WithTimeout(ctx, c.dialTimeout())
	defer cancelDial()

	conn, err := c.dialQUICFunc()(dialCtx, addr, c.TLSConfig, c.quicConfig())
	if err != nil {
		clientLogger.Error("QUIC dial failed", "error", err)
		return nil, err
	}

	return c.track(conn, handler, clientLogger.With(
		"transport", "quic",
		"local_address", conn.LocalAddr(),
		"remote_address", conn.RemoteAddr(),
	)), nil
}

// DialWebTransport establishes a WebTransport session with
// "https://"+addr and bridges it like a raw QUIC connection.
func (c *Client) DialWebTransport(ctx context.Context, addr string, handler ConnHandler) (*Conn, error) {
	clientLogger := c.logger().With("addr", addr)

	if c.shuttingDown() {
		clientLogger.Warn("WebTransport dial rejected: client shutting down")
		return nil, ErrClientClosed
	}
	c.init()

	dialCtx, cancelDial := context.WithTimeout(ctx, c.dialTimeout())
	defer cancelDial()

	var conn quic.Connection
	var err error

	if c.DialWebTransportFunc != nil {
		clientLogger.Debug("using custom WebTransport dial function")
		_, conn, err = c.DialWebTransportFunc(dialCtx, "https://"+addr, http.Header{}, c.TLSConfig)
	} else {
		_, conn, err = webtransportgo.Dial(dialCtx, "https://"+addr, http.Header{}, c.TLSConfig)
	}

	if err != nil {
		clientLogger.Error("WebTransport dial failed", "error", err)
		return nil, err
	}

	return c.track(conn, handler, clientLogger.With(
		"transport", "webtransport",
		"local_address", conn.LocalAddr(),
		"remote_address", conn.RemoteAddr(),
	)), nil
}

func (c *Client) track(conn quic.Connection, handler ConnHandler, connLogger *slog.Logger) *Conn {
	connLogger.Info("connection established")

	var bc *Conn
	bc = newConn(conn, handler, connLogger, func() { c.removeConn(bc) })
	c.addConn(bc)

	return bc
}

func (c *Client) addConn(conn *Conn) {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	c.activeConns[conn] = struct{}{}
}

func (c *Client) removeConn(conn *Conn) {
	c.connMu.Lock()
	defer c.connMu.Unlock()

	_, ok := c.activeConns[conn]
	if !ok {
		return
	}

	delete(c.activeConns, conn)
	// Send the completion signal once the last connection is gone and the
	// client is shutting down.
	if len(c.activeConns) == 0 && c.shuttingDown() {
		select {
		case <-c.doneChan:
		default:
			close(c.doneChan)
		}
	}
}

func (c *Client) shuttingDown() bool {
	return c.inShutdown.Load()
}

// Close closes every active connection and waits for them to finish
// tearing down.
func (c *Client) Close() error {
	c.inShutdown.Store(true)
	c.init()

	logger := c.logger()
	logger.Info("initiating client shutdown")

	c.connMu.Lock()
	active := len(c.activeConns)
	for conn := range c.activeConns {
		go conn.Close(0, nil)
	}
	c.connMu.Unlock()

	if active > 0 {
		<-c.doneChan
	}

	logger.Info("client shutdown completed")

	return nil
}
