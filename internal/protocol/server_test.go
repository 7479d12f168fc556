package protocol

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/usermgmt/user-registry/internal/core/service"
	"github.com/usermgmt/user-registry/internal/infrastructure/store/memstore"
)

// startTestServer binds a server to an ephemeral port and returns its address.
// The server stops when the test finishes.
func startTestServer(t *testing.T) string {
	t.Helper()

	registry := service.NewRegistryService(memstore.NewUserStore(), zerolog.Nop())
	dispatcher := NewDispatcher(registry, zerolog.Nop())
	server := NewServer("127.0.0.1:0", DefaultMaxRequestBytes, dispatcher, zerolog.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := server.Serve(ctx, ln); err != nil {
			t.Errorf("serve: %v", err)
		}
	}()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})

	return ln.Addr().String()
}

// tryRoundTrip opens a fresh connection, sends one request and returns the
// full response (one read, one dispatch, one write per connection).
func tryRoundTrip(addr, request string) (string, error) {
	conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
	if err != nil {
		return "", fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(2 * time.Second))
	if _, err := conn.Write([]byte(request)); err != nil {
		return "", fmt.Errorf("write: %w", err)
	}

	response, err := io.ReadAll(conn)
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	return string(response), nil
}

func roundTrip(t *testing.T, addr, request string) string {
	t.Helper()
	response, err := tryRoundTrip(addr, request)
	if err != nil {
		t.Fatal(err)
	}
	return response
}

func TestServer_CreateAndGet(t *testing.T) {
	addr := startTestServer(t)

	response := roundTrip(t, addr, "CREATE bob bob@test.com Bob Jones")
	if !strings.HasPrefix(response, "OK: User created with ID: ") {
		t.Fatalf("create: got %q", response)
	}

	response = roundTrip(t, addr, "GET bob")
	if !strings.Contains(response, "Username: bob") {
		t.Errorf("get: got %q", response)
	}
}

func TestServer_ErrorsTravelVerbatim(t *testing.T) {
	addr := startTestServer(t)

	response := roundTrip(t, addr, "GET nonexistent")
	if response != "ERROR: Username 'nonexistent' not found" {
		t.Errorf("got %q", response)
	}
}

func TestServer_StatePersistsAcrossConnections(t *testing.T) {
	addr := startTestServer(t)

	roundTrip(t, addr, "CREATE alice alice@x.com Alice Smith")
	roundTrip(t, addr, "CREATE bob bob@x.com Bob Jones")

	response := roundTrip(t, addr, "LIST")
	if !strings.Contains(response, "alice (alice@x.com)") || !strings.Contains(response, "bob (bob@x.com)") {
		t.Errorf("every connection must see the same shared registry, got %q", response)
	}
}

func TestServer_ConcurrentCreates(t *testing.T) {
	addr := startTestServer(t)
	const n = 20

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			request := fmt.Sprintf("CREATE user_%d user%d@x.com First Last", i, i)
			response, err := tryRoundTrip(addr, request)
			if err != nil {
				t.Errorf("create %d: %v", i, err)
				return
			}
			if !strings.HasPrefix(response, "OK: User created with ID: ") {
				t.Errorf("create %d: got %q", i, response)
			}
		}(i)
	}
	wg.Wait()

	response := roundTrip(t, addr, "LIST")
	lines := strings.Split(strings.TrimPrefix(response, "Users:\n"), "\n")
	if len(lines) != n {
		t.Errorf("expected %d users, got %d", n, len(lines))
	}
}
