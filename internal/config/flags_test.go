package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NetAddress is the only flag type with parsing logic of its own; ParseFlags
// itself cannot be exercised repeatedly because the flag package registers
// flags globally.

func TestNetAddress_Set_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
	}{
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "ip address", input: "127.0.0.1:9000", wantHost: "127.0.0.1", wantPort: 9000},
		{name: "wildcard ip", input: "0.0.0.0:80", wantHost: "0.0.0.0", wantPort: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			require.NoError(t, addr.Set(tt.input))
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
			assert.Equal(t, tt.input, addr.String())
		})
	}
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no port", input: "localhost"},
		{name: "non-numeric port", input: "localhost:http"},
		{name: "zero port", input: "localhost:0"},
		{name: "negative port", input: "localhost:-1"},
		{name: "bad host", input: "not-an-ip:8080"},
		{name: "too many separators", input: "host:1:2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			require.Error(t, addr.Set(tt.input))
		})
	}
}

func TestNetAddress_String_Zero(t *testing.T) {
	var addr NetAddress
	assert.Empty(t, addr.String())
}
