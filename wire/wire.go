// Package wire implements the little-endian length-prefixed framing used to
// talk to persistent (socket) evaluation daemons.
package wire

import (
	"encoding/binary"
	"io"
)

// DefaultMaxPayload is the response size cap applied when a backend does not
// configure one explicitly.
const DefaultMaxPayload = 1024

// HeaderSize is the fixed size, in bytes, of a request frame's header: three
// little-endian u32 fields (timeout_ms, context_len, code_len).
const HeaderSize = 12

// EncodeRequest builds the on-wire request frame: HeaderSize bytes of header
// followed by contextKey then code, with no padding.
func EncodeRequest(timeoutMs uint32, contextKey []byte, code []byte) []byte {
	buf := make([]byte, HeaderSize+len(contextKey)+len(code))

	binary.LittleEndian.PutUint32(buf[0:4], timeoutMs)
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(contextKey)))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(len(code)))

	copy(buf[HeaderSize:], contextKey)
	copy(buf[HeaderSize+len(contextKey):], code)

	return buf
}

// DecodeRequest reads a request frame from r. It is the daemon-side
// counterpart of EncodeRequest, used by tests to stand in for a sandbox
// daemon.
func DecodeRequest(r io.Reader) (timeoutMs uint32, contextKey []byte, code []byte, err error) {
	var hdr [HeaderSize]byte
	if _, err = io.ReadFull(r, hdr[:]); err != nil {
		return 0, nil, nil, ErrorShortRequestHeader.Error(err)
	}

	timeoutMs = binary.LittleEndian.Uint32(hdr[0:4])
	ctxLen := binary.LittleEndian.Uint32(hdr[4:8])
	codeLen := binary.LittleEndian.Uint32(hdr[8:12])

	contextKey = make([]byte, ctxLen)
	if _, err = io.ReadFull(r, contextKey); err != nil {
		return 0, nil, nil, ErrorShortRequestContext.Error(err)
	}

	code = make([]byte, codeLen)
	if _, err = io.ReadFull(r, code); err != nil {
		return 0, nil, nil, ErrorShortRequestCode.Error(err)
	}

	return timeoutMs, contextKey, code, nil
}

// EncodeResponse builds the on-wire response frame: a u32 length followed by
// payload.
func EncodeResponse(payload []byte) []byte {
	buf := make([]byte, 4+len(payload))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(payload)))
	copy(buf[4:], payload)
	return buf
}

// ReadLength reads the 4-byte little-endian response length prefix.
func ReadLength(r io.Reader) (uint32, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(hdr[:]), nil
}

// ReadPayload reads min(declared, maxPayload) bytes from r; a maxPayload of 0
// selects DefaultMaxPayload. The client is authoritative about the cap
// regardless of what the daemon claims.
func ReadPayload(r io.Reader, declared uint32, maxPayload uint32) ([]byte, error) {
	if maxPayload == 0 {
		maxPayload = DefaultMaxPayload
	}

	n := declared
	if n > maxPayload {
		n = maxPayload
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, ErrorShortResponsePayload.Error(err)
	}

	return buf, nil
}
