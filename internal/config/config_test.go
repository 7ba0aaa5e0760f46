package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	valid := &Config{Env: "development", LogLevel: "info", Addr: ":8080"}
	assert.NoError(t, valid.Validate())

	for _, level := range []string{"debug", "info", "warn", "error"} {
		c := &Config{Env: "production", LogLevel: level, Addr: ":8080"}
		assert.NoError(t, c.Validate())
	}

	badEnv := &Config{Env: "local", LogLevel: "info", Addr: ":8080"}
	assert.Error(t, badEnv.Validate())

	badLevel := &Config{Env: "development", LogLevel: "verbose", Addr: ":8080"}
	assert.Error(t, badLevel.Validate())

	noAddr := &Config{Env: "development", LogLevel: "info", Addr: ""}
	assert.Error(t, noAddr.Validate())
}
