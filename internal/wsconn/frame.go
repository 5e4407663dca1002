// Package wsconn is a lightweight client-side implementation of the
// WebSocket protocol (RFC 6455), written specifically for fast, idiomatic
// communication with Chrome DevTools over a local TCP connection.
//
// It deliberately does not implement: server-side framing, proxies, TLS for
// "wss://" addresses, the "permessage-deflate" extension (RFC 7692), or
// handshake extras beyond the Sec-WebSocket-Key exchange (sub-protocols,
// cookies, authentication headers). Almost all CDP traffic happens on
// localhost in small messages, so none of that machinery pays for itself
// here, and every frame this client sends must still be masked and
// byte-exact, the reason this package hand-rolls framing instead of
// importing gorilla/websocket or gobwas/ws.
package wsconn

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// opcode identifies a WebSocket frame's payload interpretation, per
// https://datatracker.ietf.org/doc/html/rfc6455#section-11.8.
type opcode byte

const (
	continuationFrame opcode = iota
	textFrame
	binaryFrame
	_
	_
	_
	_
	_
	connectionCloseFrame
	pingFrame
	pongFrame
)

// DefaultMaxFramePayload bounds both the frames this client will send and
// the frames it will accept: a configurable cap past which outbound
// frames are refused and oversized inbound payloads are rejected. 16 MiB
// comfortably covers a full-page screenshot PNG encoded as base64 JSON.
const DefaultMaxFramePayload = 16 << 20

// frame is the decoded or to-be-encoded representation of a single
// WebSocket frame, per https://datatracker.ietf.org/doc/html/rfc6455#section-5.2.
type frame struct {
	fin           bool
	rsv           [3]bool
	opcode        opcode
	mask          bool
	payloadLength uint64
	maskingKey    []byte
	payloadData   []byte
}

// readFrame decodes one frame from r, enforcing maxPayload on the declared
// length before any payload bytes are read.
func readFrame(r io.Reader, maxPayload uint64) (f frame, fatal bool, err error) {
	hdr := make([]byte, 2)
	if _, err = io.ReadFull(r, hdr); err != nil {
		return f, false, fmt.Errorf("failed to read frame header: %w", err)
	}
	b0, b1 := hdr[0], hdr[1]

	f.fin = b0&0x80 != 0
	f.rsv[0] = b0&0x40 != 0
	f.rsv[1] = b0&0x20 != 0
	f.rsv[2] = b0&0x10 != 0
	if b0&0x70 != 0 {
		return f, true, errors.New("server sent non-zero reserved bits")
	}
	f.opcode = opcode(b0 & 0x0f)
	if (f.opcode > 2 && f.opcode < 8) || f.opcode > 10 {
		return f, true, fmt.Errorf("server sent unknown opcode %d", f.opcode)
	}

	f.mask = b1&0x80 != 0
	if f.mask {
		// A server MUST NOT mask frames it sends to the client.
		return f, true, errors.New("server unexpectedly masked a frame")
	}
	lenByte := b1 & 0x7f

	switch {
	case lenByte <= 125:
		f.payloadLength = uint64(lenByte)
	case lenByte == 126:
		ext := make([]byte, 2)
		if _, err = io.ReadFull(r, ext); err != nil {
			return f, false, fmt.Errorf("failed to read extended length: %w", err)
		}
		f.payloadLength = uint64(binary.BigEndian.Uint16(ext))
	default:
		ext := make([]byte, 8)
		if _, err = io.ReadFull(r, ext); err != nil {
			return f, false, fmt.Errorf("failed to read extended length: %w", err)
		}
		f.payloadLength = binary.BigEndian.Uint64(ext)
	}

	if f.payloadLength > maxPayload {
		return f, true, fmt.Errorf("frame payload %d exceeds cap %d", f.payloadLength, maxPayload)
	}

	f.payloadData = make([]byte, f.payloadLength)
	if _, err = io.ReadFull(r, f.payloadData); err != nil {
		return f, false, fmt.Errorf("failed to read payload: %w", err)
	}
	return f, false, nil
}

// writeFrame encodes and writes f to w. Every client-to-server frame must
// be masked (RFC 6455 §5.1); callers populate maskingKey via newMaskedFrame.
func writeFrame(w io.Writer, f frame) error {
	var hdr bytes.Buffer

	var b0 byte
	if f.fin {
		b0 |= 0x80
	}
	for i, r := range f.rsv {
		if r {
			b0 |= 1 << (6 - i)
		}
	}
	b0 |= byte(f.opcode)
	hdr.WriteByte(b0)

	var b1 byte = 0x80 // client frames are always masked
	switch {
	case f.payloadLength <= 125:
		b1 |= byte(f.payloadLength)
		hdr.WriteByte(b1)
	case f.payloadLength <= 65535:
		b1 |= 126
		hdr.WriteByte(b1)
		ext := make([]byte, 2)
		binary.BigEndian.PutUint16(ext, uint16(f.payloadLength))
		hdr.Write(ext)
	default:
		b1 |= 127
		hdr.WriteByte(b1)
		ext := make([]byte, 8)
		binary.BigEndian.PutUint64(ext, f.payloadLength)
		hdr.Write(ext)
	}
	hdr.Write(f.maskingKey)

	if _, err := w.Write(hdr.Bytes()); err != nil {
		return fmt.Errorf("failed to write frame header: %w", err)
	}
	if _, err := w.Write(f.payloadData); err != nil {
		return fmt.Errorf("failed to write masked payload: %w", err)
	}
	return nil
}

// newMaskedFrame builds a single, final, masked frame carrying msg, masking
// it with a fresh random 4-byte key per RFC 6455 §5.3.
func newMaskedFrame(o opcode, msg []byte, maxPayload uint64) (frame, error) {
	if uint64(len(msg)) > maxPayload {
		return frame{}, fmt.Errorf("payload of %d bytes exceeds cap %d", len(msg), maxPayload)
	}
	f := frame{fin: true, opcode: o, mask: true, payloadLength: uint64(len(msg))}
	f.maskingKey = make([]byte, 4)
	if _, err := io.ReadFull(rand.Reader, f.maskingKey); err != nil {
		return frame{}, fmt.Errorf("failed to generate masking key: %w", err)
	}
	f.payloadData = maskPayload(msg, f.maskingKey)
	return f, nil
}

// maskPayload XORs each byte of data with the corresponding byte of a
// cyclically-repeated 4-byte key, per RFC 6455 §5.3. It is its own inverse:
// maskPayload(maskPayload(p, k), k) == p for all p and k.
func maskPayload(data, key []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%4]
	}
	return out
}
