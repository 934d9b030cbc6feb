package webtransportgo

import (
	"errors"

	"github.com/okdaichi/quicbridge/quic"
	quicgo_webtransportgo "github.com/quic-go/webtransport-go"
)

// convertStreamError maps webtransport-go stream errors onto the quic
// package taxonomy so consumers see one set of error types regardless of
// the dial path. Other errors pass through unchanged.
func convertStreamError(err error) error {
	if err == nil {
		return nil
	}

	var strErr *quicgo_webtransportgo.StreamError
	if errors.As(err, &strErr) {
		return &quic.StreamError{
			StreamID:  strErr.StreamID,
			ErrorCode: quic.StreamErrorCode(strErr.ErrorCode),
			Remote:    strErr.Remote,
		}
	}
	return convertSessionError(err)
}

// convertSessionError maps a webtransport-go session error onto
// quic.ApplicationError, which is how a peer's session close surfaces on
// the raw QUIC path.
func convertSessionError(err error) error {
	if err == nil {
		return nil
	}

	var sessErr *quicgo_webtransportgo.SessionError
	if errors.As(err, &sessErr) {
		return &quic.ApplicationError{
			ErrorCode:    quic.ApplicationErrorCode(sessErr.ErrorCode),
			ErrorMessage: sessErr.Message,
			Remote:       sessErr.Remote,
		}
	}
	return err
}
