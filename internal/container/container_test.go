package container

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportstat/internal"
	"sportstat/internal/config"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.GinMode = "test"
	cfg.Server.Port = "0"
	cfg.Server.ShutdownTimeout = time.Second
	return cfg
}

func TestNew(t *testing.T) {
	c, err := New(testConfig(), internal.NewLoggerTo(io.Discard, internal.LogLevelError))
	require.NoError(t, err)

	assert.NotNil(t, c.Loader)
	assert.NotNil(t, c.Renderer)
	assert.NotNil(t, c.Server)

	s := c.Sessions.Create()
	assert.Equal(t, 1, c.Sessions.Len())
	assert.Nil(t, s.Dataset())
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}

func TestRun_StopsOnCancel(t *testing.T) {
	c, err := New(testConfig(), internal.NewLoggerTo(io.Discard, internal.LogLevelError))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
