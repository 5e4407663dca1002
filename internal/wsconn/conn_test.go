package wsconn

import (
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConnReadErrors(t *testing.T) {
	tests := []struct {
		desc string
		b    []byte
	}{
		{"reserved bits", []byte{0x70, 0x00}},
		{"invalid opcode", []byte{0x0f, 0x00}},
		{"masked server frame", []byte{0x80, 0x80}},
	}
	for i, tc := range tests {
		server, client := net.Pipe()
		conn := newConn(client, 0, nil)
		defer server.Close()
		defer client.Close()

		go func() {
			server.Write(tc.b)
			server.Read(make([]byte, 8))
		}()

		got, err := conn.Read()
		if err == nil {
			t.Errorf("TC %d (%s): Read() = %#v, want error", i, tc.desc, got)
		}
	}
}

func TestConnReadSingleEmptyFrame(t *testing.T) {
	server, client := net.Pipe()
	conn := newConn(client, 0, nil)
	defer server.Close()
	defer client.Close()

	go func() {
		server.Write([]byte{0x81, 0x00})
	}()

	got, err := conn.Read()
	if err != nil {
		t.Fatalf("Read(); unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Read() = %#v, want empty", got)
	}
}

func TestConnReadFragmentedFrames(t *testing.T) {
	server, client := net.Pipe()
	conn := newConn(client, 0, nil)
	defer server.Close()
	defer client.Close()

	go func() {
		b := []byte{0x01, 0x01, 0xaa, 0x00, 0x02, 0xbb, 0xcc, 0x80, 0x03, 0xdd, 0xee, 0xff}
		server.Write(b)
	}()

	got, err := conn.Read()
	want := []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	if err != nil {
		t.Fatalf("Read(); unexpected error: %v", err)
	}
	if !cmp.Equal(got, want) {
		t.Errorf("Read() = %#v, want %#v", got, want)
	}
}

func TestConnReadRespondsToPing(t *testing.T) {
	server, client := net.Pipe()
	conn := newConn(client, 0, nil)
	defer server.Close()
	defer client.Close()

	go func() {
		// ping with 4-byte payload "ping", then a final unmasked data frame
		ping := []byte{0x89, 0x04, 0x70, 0x69, 0x6e, 0x67}
		server.Write(ping)
		pong := make([]byte, 8)
		server.Read(pong) // drain the auto-reply pong
		server.Write([]byte{0x81, 0x01, 0x5a})
	}()

	got, err := conn.Read()
	if err != nil {
		t.Fatalf("Read(); unexpected error: %v", err)
	}
	if !cmp.Equal(got, []byte{0x5a}) {
		t.Errorf("Read() = %#v, want %#v", got, []byte{0x5a})
	}
}

func TestConnReadServerClose(t *testing.T) {
	server, client := net.Pipe()
	conn := newConn(client, 0, nil)
	defer server.Close()

	go func() {
		closeFrame := []byte{0x88, 0x08, 0x03, 0xe9, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e}
		server.Write(closeFrame)
		server.Read(make([]byte, 8)) // drain our close reply
	}()

	if _, err := conn.Read(); err == nil {
		t.Error("Read() after server close = nil error, want error")
	}
}

func TestConnWriteTextIsMasked(t *testing.T) {
	server, client := net.Pipe()
	conn := newConn(client, 0, nil)
	defer server.Close()
	defer client.Close()

	done := make(chan struct{})
	var hdr [2]byte
	go func() {
		defer close(done)
		server.Read(hdr[:])
	}()

	go conn.WriteText([]byte("hello"))
	<-done

	if hdr[1]&0x80 == 0 {
		t.Error("client frame missing mask bit")
	}
}

func TestConnProbeDetectsClosedPeer(t *testing.T) {
	server, client := net.Pipe()
	conn := newConn(client, 0, nil)
	server.Close()

	if conn.Probe() {
		t.Error("Probe() = true after peer closed, want false")
	}
	client.Close()
}

func TestConnProbeReturnsFalseOnIdleSocket(t *testing.T) {
	server, client := net.Pipe()
	conn := newConn(client, 0, nil)
	defer server.Close()
	defer client.Close()

	if conn.Probe() {
		t.Error("Probe() = true on an idle socket with nothing buffered, want false")
	}
}
