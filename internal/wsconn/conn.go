package wsconn

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/tgraves/cdpctl/internal/cdplog"
)

// Conn is a single WebSocket connection to a CDP debug endpoint. It is safe
// for one concurrent reader and one concurrent writer (the async worker is
// the only component that does both, serially).
type Conn struct {
	nc         net.Conn
	r          *bufio.Reader
	w          *bufio.Writer
	maxPayload uint64
	log        cdplog.Logger
}

// newConn wraps an established TCP connection with buffered I/O.
func newConn(nc net.Conn, maxPayload uint64, log cdplog.Logger) *Conn {
	if maxPayload == 0 {
		maxPayload = DefaultMaxFramePayload
	}
	if log == nil {
		log = cdplog.Discard()
	}
	return &Conn{
		nc:         nc,
		r:          bufio.NewReader(nc),
		w:          bufio.NewWriter(nc),
		maxPayload: maxPayload,
		log:        log,
	}
}

// Read receives one complete message from the server, transparently
// handling fragmentation, ping/pong control frames, and close frames. It
// blocks until a data frame is fully received or the connection fails.
func (c *Conn) Read() ([]byte, error) {
	var msg bytes.Buffer
	for {
		f, fatal, err := readFrame(c.r, c.maxPayload)
		if fatal {
			c.log.Warn("dropping connection after protocol error", "error", err)
			_ = c.Close(1002, nil)
			return nil, fmt.Errorf("transport: protocol error: %w", err)
		}
		if err != nil {
			return nil, err
		}

		switch f.opcode {
		case connectionCloseFrame:
			code := uint16(1005)
			var reason []byte
			if len(f.payloadData) >= 2 {
				code = binary.BigEndian.Uint16(f.payloadData[:2])
				reason = f.payloadData[2:]
			}
			_ = c.Close(code, nil)
			return nil, fmt.Errorf("transport: server closed connection: code=%d reason=%q", code, reason)
		case pingFrame:
			c.log.Debug("received ping", "len", len(f.payloadData))
			if err := c.WritePong(f.payloadData); err != nil {
				return nil, err
			}
			continue
		case pongFrame:
			c.log.Debug("received pong", "len", len(f.payloadData))
			continue
		}

		if f.fin && f.opcode != continuationFrame {
			return f.payloadData, nil
		}
		if f.opcode != continuationFrame {
			msg.Reset()
		}
		msg.Write(f.payloadData)
		if f.fin {
			return msg.Bytes(), nil
		}
	}
}

func (c *Conn) writeMessage(o opcode, msg []byte) error {
	f, err := newMaskedFrame(o, msg, c.maxPayload)
	if err != nil {
		return fmt.Errorf("transport: %w", err)
	}
	if err := writeFrame(c.w, f); err != nil {
		return err
	}
	return c.w.Flush()
}

// WriteText sends a full UTF-8 text message, the only frame type the CDP
// client ever sends as a request.
func (c *Conn) WriteText(msg []byte) error { return c.writeMessage(textFrame, msg) }

// WritePing sends a ping control frame.
func (c *Conn) WritePing(appData []byte) error {
	if len(appData) > 125 {
		return errors.New("control frame payload must be <= 125 bytes")
	}
	return c.writeMessage(pingFrame, appData)
}

// WritePong sends a pong control frame, either in response to a ping or as
// an unsolicited heartbeat.
func (c *Conn) WritePong(appData []byte) error {
	if len(appData) > 125 {
		return errors.New("control frame payload must be <= 125 bytes")
	}
	return c.writeMessage(pongFrame, appData)
}

// Close sends a close control frame and then closes the underlying TCP
// connection.
func (c *Conn) Close(statusCode uint16, reason []byte) error {
	b := make([]byte, 2, 2+len(reason))
	binary.BigEndian.PutUint16(b, statusCode)
	b = append(b, reason...)
	_ = c.writeMessage(connectionCloseFrame, b)
	return c.nc.Close()
}

// Probe is a non-blocking readiness check: it reports whether a byte is
// already buffered and ready to read, without consuming it and without
// blocking the caller waiting on the network.
func (c *Conn) Probe() (ready bool) {
	if c.nc == nil {
		return false
	}
	if err := c.nc.SetReadDeadline(time.Now().Add(time.Millisecond)); err != nil {
		return false
	}
	defer c.nc.SetReadDeadline(time.Time{})

	_, err := c.r.Peek(1)
	return err == nil || errors.Is(err, bufio.ErrBufferFull)
}
