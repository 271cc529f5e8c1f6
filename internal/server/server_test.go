package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joycesaquino/customer/internal/config"
	"github.com/joycesaquino/customer/internal/handler"
	httpHandler "github.com/joycesaquino/customer/internal/handler/http"
	"github.com/joycesaquino/customer/internal/logger"
	"github.com/joycesaquino/customer/internal/service"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func newTestHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: httpHandler.NewHandler(&service.Services{}, logger.Nop())}
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoHandler(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_DefaultShutdownTimeout(t *testing.T) {
	s, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: ":8080"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, defaultShutdownTimeout, s.(*server).httpServer.shutdownTimeout)
}

func TestServer_RunWithoutServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(context.Background()), errNoServersToRun)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	addr := freeAddress(t)
	s, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: addr, ShutdownTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	// unknown paths answer 404 once the listener is up
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/missing")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	s, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: l.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	assert.Error(t, s.(*server).run(context.Background()))
}
