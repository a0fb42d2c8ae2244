package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8080",
			expectedAddr: NetAddress{Host: "localhost", Port: 8080},
		},
		{
			name:         "valid IP",
			input:        "127.0.0.1:9090",
			expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090},
		},
		{
			name:        "missing port",
			input:       "localhost",
			expectError: true,
		},
		{
			name:        "non-numeric port",
			input:       "localhost:http",
			expectError: true,
		},
		{
			name:        "zero port",
			input:       "localhost:0",
			expectError: true,
		},
		{
			name:        "bogus host",
			input:       "not-an-ip:8080",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}
