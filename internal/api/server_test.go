package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/scorekeep/scorekeep/internal/testutil"
)

func TestNewServerAppliesConfig(t *testing.T) {
	srv := NewServer(http.NewServeMux(), ServerConfig{
		Host:         "127.0.0.1",
		Port:         9090,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}, testutil.NopLogger())

	assert.Equal(t, "127.0.0.1:9090", srv.Addr())
	assert.Equal(t, 5*time.Second, srv.server.ReadTimeout)
	assert.Equal(t, 10*time.Second, srv.server.WriteTimeout)
	assert.Equal(t, 2*time.Minute, srv.server.IdleTimeout)
}

func TestNewServerFillsZeroFieldsWithDefaults(t *testing.T) {
	srv := NewServer(http.NewServeMux(), ServerConfig{Port: 9090}, testutil.NopLogger())

	def := DefaultServerConfig()
	assert.Equal(t, ":9090", srv.Addr())
	assert.Equal(t, def.ReadTimeout, srv.server.ReadTimeout)
	assert.Equal(t, def.WriteTimeout, srv.server.WriteTimeout)
	assert.Equal(t, def.IdleTimeout, srv.server.IdleTimeout)
	assert.Equal(t, def.ShutdownTimeout, srv.config.ShutdownTimeout)
}
