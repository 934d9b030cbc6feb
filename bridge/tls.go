package bridge

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
)

// TLSOptions describes the client security context: trust roots, an
// optional client certificate, and an optional protocol-negotiation list.
type TLSOptions struct {
	// ServerName is the hostname presented for certificate verification.
	ServerName string

	// NextProtos is the ALPN protocol list, if any.
	NextProtos []string

	// RootCAs holds extra PEM-encoded certificate authorities trusted in
	// addition to the system pool.
	RootCAs [][]byte

	// ClientCert and ClientKey hold a PEM-encoded client certificate and
	// key pair; both must be set to enable client authentication.
	ClientCert []byte
	ClientKey  []byte
}

// ClientTLSConfig builds a *tls.Config from opts: the system root pool
// extended with the caller's authorities, plus the client certificate when
// supplied. Malformed material is a setup error reported synchronously.
func ClientTLSConfig(opts TLSOptions) (*tls.Config, error) {
	roots, err := x509.SystemCertPool()
	if err != nil {
		return nil, fmt.Errorf("bridge: loading system roots: %w", err)
	}

	for _, ca := range opts.RootCAs {
		if !roots.AppendCertsFromPEM(ca) {
			return nil, ErrInvalidRootCA
		}
	}

	cfg := &tls.Config{
		RootCAs:    roots,
		ServerName: opts.ServerName,
		NextProtos: opts.NextProtos,
	}

	if len(opts.ClientCert) > 0 || len(opts.ClientKey) > 0 {
		cert, err := tls.X509KeyPair(opts.ClientCert, opts.ClientKey)
		if err != nil {
			return nil, fmt.Errorf("bridge: invalid client certificate: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	return cfg, nil
}
