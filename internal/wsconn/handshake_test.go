package wsconn

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testAcceptKey(r *http.Request) string {
	h := sha1.New()
	h.Write([]byte(r.Header.Get("Sec-WebSocket-Key")))
	h.Write([]byte(websocketGUID))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func subTestDial(f func(http.ResponseWriter, *http.Request)) func(t *testing.T) {
	return func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(f))
		defer ts.Close()

		addr := strings.TrimPrefix(ts.URL, "http://")
		path := "/devtools/page/01234567-89ab-cdef-0123-456789abcdef"

		_, err := Dial(context.Background(), addr, path, Options{})
		if err == nil {
			t.Error("Dial() = Conn, want error")
		}
	}
}

func TestDialExpectedErrors(t *testing.T) {
	t.Run("incorrect status code", subTestDial(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Upgrade", "websocket")
		w.Header().Add("Connection", "Upgrade")
		w.Header().Add("Sec-WebSocket-Accept", testAcceptKey(r))
		w.WriteHeader(http.StatusOK)
	}))
	t.Run("incorrect upgrade header", subTestDial(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Upgrade", "FOO")
		w.Header().Add("Connection", "Upgrade")
		w.Header().Add("Sec-WebSocket-Accept", testAcceptKey(r))
		w.WriteHeader(http.StatusSwitchingProtocols)
	}))
	t.Run("incorrect connection header", subTestDial(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Upgrade", "websocket")
		w.Header().Add("Connection", "BAR")
		w.Header().Add("Sec-WebSocket-Accept", testAcceptKey(r))
		w.WriteHeader(http.StatusSwitchingProtocols)
	}))
	t.Run("incorrect accept header", subTestDial(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Upgrade", "websocket")
		w.Header().Add("Connection", "Upgrade")
		w.Header().Add("Sec-WebSocket-Accept", "not-the-right-value")
		w.WriteHeader(http.StatusSwitchingProtocols)
	}))
	t.Run("missing upgrade header", subTestDial(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Connection", "Upgrade")
		w.Header().Add("Sec-WebSocket-Accept", testAcceptKey(r))
		w.WriteHeader(http.StatusSwitchingProtocols)
	}))
	t.Run("missing connection header", subTestDial(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Upgrade", "websocket")
		w.Header().Add("Sec-WebSocket-Accept", testAcceptKey(r))
		w.WriteHeader(http.StatusSwitchingProtocols)
	}))
	t.Run("missing accept header", subTestDial(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Upgrade", "websocket")
		w.Header().Add("Connection", "Upgrade")
		w.WriteHeader(http.StatusSwitchingProtocols)
	}))
}

func TestAcceptKeyMatchesRFCExample(t *testing.T) {
	// Example key/accept pair from RFC 6455 §1.3.
	const key = "dGhlIHNhbXBsZSBub25jZQ=="
	const want = "s3pPLMBiTxaQ9kYGzzhZRbK+xOo="
	if got := acceptKey(key); got != want {
		t.Errorf("acceptKey(%q) = %q, want %q", key, got, want)
	}
}
