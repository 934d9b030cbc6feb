// Package webtransport provides a WebTransport dial abstraction for the bridge.
//
// WebTransport runs over HTTP/3, which itself runs over QUIC. This package
// lets the bridge establish sessions from environments constrained by the
// Web security model while exposing the same quic.Connection abstraction
// the rest of the module is built on.
//
// The webtransportgo subpackage wraps github.com/quic-go/webtransport-go.
package webtransport
