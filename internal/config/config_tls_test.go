package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTLSMode(t *testing.T) {
	tests := []struct {
		name        string
		tls         TLSConfig
		expectError bool
		errorMsg    string
	}{
		{
			name:        "disabled mode",
			tls:         TLSConfig{Mode: "disabled"},
			expectError: false,
		},
		{
			name: "server mode valid",
			tls: TLSConfig{
				Mode:     "server",
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
			},
			expectError: false,
		},
		{
			name: "mutual mode valid",
			tls: TLSConfig{
				Mode:     "mutual",
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
				CAFile:   "/path/to/ca.pem",
			},
			expectError: false,
		},
		{
			name:        "invalid mode",
			tls:         TLSConfig{Mode: "invalid"},
			expectError: true,
			errorMsg:    "invalid TLS mode: invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTLSMode(tt.tls)

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateServerModeTLS(t *testing.T) {
	tests := []struct {
		name        string
		tls         TLSConfig
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid with files",
			tls: TLSConfig{
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
			},
			expectError: false,
		},
		{
			name: "valid with content",
			tls: TLSConfig{
				CertContent: "cert-content",
				KeyContent:  "key-content",
			},
			expectError: false,
		},
		{
			name: "mixed sources valid",
			tls: TLSConfig{
				CertFile:   "/path/to/cert.pem",
				KeyContent: "key-content",
			},
			expectError: false,
		},
		{
			name:        "missing certificate",
			tls:         TLSConfig{KeyFile: "/path/to/key.pem"},
			expectError: true,
			errorMsg:    "TLS certificate and key are required for server mode",
		},
		{
			name: "duplicate cert sources",
			tls: TLSConfig{
				CertFile:    "/path/to/cert.pem",
				CertContent: "cert-content",
				KeyFile:     "/path/to/key.pem",
			},
			expectError: true,
			errorMsg:    "cannot specify both certFile and certContent",
		},
		{
			name: "duplicate key sources",
			tls: TLSConfig{
				CertFile:   "/path/to/cert.pem",
				KeyFile:    "/path/to/key.pem",
				KeyContent: "key-content",
			},
			expectError: true,
			errorMsg:    "cannot specify both keyFile and keyContent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateServerModeTLS(tt.tls)

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateMutualModeTLS(t *testing.T) {
	tests := []struct {
		name        string
		tls         TLSConfig
		expectError bool
		errorMsg    string
	}{
		{
			name: "valid with files",
			tls: TLSConfig{
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
				CAFile:   "/path/to/ca.pem",
			},
			expectError: false,
		},
		{
			name: "valid with content and policy",
			tls: TLSConfig{
				CertContent:      "cert-content",
				KeyContent:       "key-content",
				CAContent:        "ca-content",
				ClientAuthPolicy: "require",
			},
			expectError: false,
		},
		{
			name: "missing CA",
			tls: TLSConfig{
				CertFile: "/path/to/cert.pem",
				KeyFile:  "/path/to/key.pem",
			},
			expectError: true,
			errorMsg:    "CA certificate is required for mutual TLS mode",
		},
		{
			name: "duplicate CA sources",
			tls: TLSConfig{
				CertFile:  "/path/to/cert.pem",
				KeyFile:   "/path/to/key.pem",
				CAFile:    "/path/to/ca.pem",
				CAContent: "ca-content",
			},
			expectError: true,
			errorMsg:    "cannot specify both caFile and caContent",
		},
		{
			name: "invalid client auth policy",
			tls: TLSConfig{
				CertFile:         "/path/to/cert.pem",
				KeyFile:          "/path/to/key.pem",
				CAFile:           "/path/to/ca.pem",
				ClientAuthPolicy: "invalid",
			},
			expectError: true,
			errorMsg:    "invalid clientAuthPolicy: invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMutualModeTLS(tt.tls)

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTLSVersion(t *testing.T) {
	tests := []struct {
		name        string
		minVersion  string
		expectError bool
	}{
		{name: "empty version (default)", minVersion: "", expectError: false},
		{name: "TLS 1.2", minVersion: "1.2", expectError: false},
		{name: "TLS 1.3", minVersion: "1.3", expectError: false},
		{name: "TLS 1.1 rejected", minVersion: "1.1", expectError: true},
		{name: "garbage version", minVersion: "invalid", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTLSVersion(TLSConfig{MinVersion: tt.minVersion})

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid TLS minVersion")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTLSConfigIntegration(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errorMsg    string
	}{
		{
			name: "complete valid server config",
			config: Config{
				Server: ServerConfig{
					TLS: TLSConfig{
						Mode:       "server",
						CertFile:   "/path/to/cert.pem",
						KeyFile:    "/path/to/key.pem",
						MinVersion: "1.2",
					},
				},
			},
			expectError: false,
		},
		{
			name: "complete valid mutual config",
			config: Config{
				Server: ServerConfig{
					TLS: TLSConfig{
						Mode:             "mutual",
						CertContent:      "cert-content",
						KeyContent:       "key-content",
						CAContent:        "ca-content",
						ClientAuthPolicy: "require",
						MinVersion:       "1.3",
					},
				},
			},
			expectError: false,
		},
		{
			name: "disabled TLS",
			config: Config{
				Server: ServerConfig{TLS: TLSConfig{Mode: "disabled"}},
			},
			expectError: false,
		},
		{
			name: "valid mode with invalid version",
			config: Config{
				Server: ServerConfig{
					TLS: TLSConfig{
						Mode:       "server",
						CertFile:   "/path/to/cert.pem",
						KeyFile:    "/path/to/key.pem",
						MinVersion: "1.0",
					},
				},
			},
			expectError: true,
			errorMsg:    "invalid TLS minVersion: 1.0",
		},
		{
			name: "server mode missing certificates",
			config: Config{
				Server: ServerConfig{
					TLS: TLSConfig{Mode: "server", MinVersion: "1.2"},
				},
			},
			expectError: true,
			errorMsg:    "TLS certificate and key are required for server mode",
		},
		{
			name: "mutual mode missing CA",
			config: Config{
				Server: ServerConfig{
					TLS: TLSConfig{
						Mode:     "mutual",
						CertFile: "/path/to/cert.pem",
						KeyFile:  "/path/to/key.pem",
					},
				},
			},
			expectError: true,
			errorMsg:    "CA certificate is required for mutual TLS mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.ValidateTLSConfig()

			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
