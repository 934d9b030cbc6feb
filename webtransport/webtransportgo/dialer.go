package webtransportgo

import (
	"context"
	"crypto/tls"
	"net/http"

	"github.com/okdaichi/quicbridge/quic"
	"github.com/okdaichi/quicbridge/webtransport"
	quicgo_webtransportgo "github.com/quic-go/webtransport-go"
)

var _ webtransport.DialAddrFunc = Dial

// Dial establishes a WebTransport session with the given URL and wraps it
// as a quic.Connection.
func Dial(ctx context.Context, addr string, header http.Header, tlsConfig *tls.Config) (*http.Response, quic.Connection, error) {
	d := quicgo_webtransportgo.Dialer{
		TLSClientConfig: tlsConfig,
	}
	rsp, wtsess, err := d.Dial(ctx, addr, header)
	if err != nil {
		return rsp, nil, err
	}
	return rsp, wrapSession(wtsess), nil
}
