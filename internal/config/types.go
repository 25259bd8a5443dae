// Copyright (c) 2024 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package config

// Config represents the root structure of the YAML configuration file.
// This struct is used to unmarshal configuration data from Viper.
type Config struct {
	API       API       `mapstructure:"api"       mask:"struct"`
	Store     Store     `mapstructure:"store"     mask:"struct"`
	Security  Security  `mapstructure:"security"  mask:"struct"`
	Snapshot  Snapshot  `mapstructure:"snapshot"`
	NATS      NATS      `mapstructure:"nats"`
	Telemetry Telemetry `mapstructure:"telemetry"`
	// Debug enable or disable debug option set from CLI.
	Debug bool `mapstructure:"debug"`
}

// Telemetry configuration settings.
type Telemetry struct {
	Tracing TracingConfig `mapstructure:"tracing,omitempty"`
	Metrics MetricsConfig `mapstructure:"metrics,omitempty"`
}

// MetricsConfig configuration settings for Prometheus metrics.
type MetricsConfig struct {
	// Path is the HTTP path for the Prometheus scrape endpoint.
	// Defaults to "/metrics" when empty.
	Path string `mapstructure:"path"`
}

// TracingConfig configuration settings for distributed tracing.
type TracingConfig struct {
	// Enabled enables or disables tracing.
	Enabled bool `mapstructure:"enabled"`
	// Exporter selects the trace exporter: "stdout" or "otlp".
	Exporter string `mapstructure:"exporter"`
	// OTLPEndpoint is the gRPC endpoint for the OTLP exporter (e.g., "localhost:4317").
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

// Store selects and configures the persistence backend holding the audit log.
type Store struct {
	// Backend is the persistence strategy: "memory", "file", "nats", or "redis".
	Backend string `mapstructure:"backend" validate:"omitempty,oneof=memory file nats redis"`
	// Key is the logical key the serialized log document is stored under.
	Key   string     `mapstructure:"key"`
	File  FileStore  `mapstructure:"file,omitempty"`
	Redis RedisStore `mapstructure:"redis,omitempty"  mask:"struct"`
}

// FileStore configuration for the file backend.
type FileStore struct {
	// Dir is the directory the log document is written to.
	Dir string `mapstructure:"dir"`
}

// RedisStore configuration for the redis backend.
type RedisStore struct {
	// URL is a redis connection string (e.g., "redis://localhost:6379/0").
	// May embed credentials, so it is masked when echoed.
	URL string `mapstructure:"url" mask:"password"`
	// Prefix namespaces all keys written by this service.
	Prefix string `mapstructure:"prefix"`
}

// Security holds the static signer table used to authorize destructive
// operations against the audit log.
type Security struct {
	// Admins allowed to countersign audit log clears.
	Admins []Admin `mapstructure:"admins" validate:"dive" mask:"struct"`
}

// Admin is one username to password-hash pair in the signer table.
type Admin struct {
	// Username of the signer.
	Username string `mapstructure:"username"      validate:"required"`
	// PasswordHash is the bcrypt hash of the signer's password.
	PasswordHash string `mapstructure:"password_hash" validate:"required" mask:"password"`
}

// Snapshot configuration for the periodic export job.
type Snapshot struct {
	// Enabled enables or disables scheduled snapshots.
	Enabled bool `mapstructure:"enabled"`
	// Schedule is a cron expression (e.g., "0 2 * * *").
	Schedule string `mapstructure:"schedule"`
	// Dir is the directory snapshot files are written to.
	Dir string `mapstructure:"dir"`
	// BatchSize is the page size used when draining the log.
	BatchSize int `mapstructure:"batch_size"`
}

// NATSAuth holds client-side authentication settings for connecting to NATS.
type NATSAuth struct {
	// Type is the auth method: "none", "user_pass", or "nkey".
	Type string `mapstructure:"type"`
	// Username for user_pass auth.
	Username string `mapstructure:"username"`
	// Password for user_pass auth.
	Password string `mapstructure:"password"  mask:"password"`
	// NKeyFile path to the NKey seed file for nkey auth.
	NKeyFile string `mapstructure:"nkey_file"`
}

// NATS configuration settings.
type NATS struct {
	Server     NATSServer     `mapstructure:"server,omitempty"`
	Connection NATSConnection `mapstructure:"connection,omitempty"`
	Audit      NATSAudit      `mapstructure:"audit,omitempty"`
}

// NATSAudit configuration for the audit log KV bucket.
type NATSAudit struct {
	// Bucket is the KV bucket name for the audit log document.
	Bucket   string `mapstructure:"bucket"`
	TTL      string `mapstructure:"ttl"` // e.g. "720h" (30 days)
	MaxBytes int64  `mapstructure:"max_bytes"`
	Storage  string `mapstructure:"storage"` // "file" or "memory"
	Replicas int    `mapstructure:"replicas"`
}

// NATSServer configuration settings for the embedded NATS server.
type NATSServer struct {
	// Host the server will bind to.
	Host string `mapstructure:"host"`
	// Port the server will bind to.
	Port int `mapstructure:"port"`
	// StoreDir the directory for JetStream file storage.
	StoreDir string `mapstructure:"store_dir"`
}

// NATSConnection is a reusable NATS connection configuration block.
type NATSConnection struct {
	// Host the NATS server hostname.
	Host string `mapstructure:"host"`
	// Port the NATS server port.
	Port int `mapstructure:"port"`
	// ClientName the NATS client name for identification.
	ClientName string `mapstructure:"client_name"`
	// Auth holds client-side authentication configuration.
	Auth NATSAuth `mapstructure:"auth,omitempty"`
}

// API configuration settings.
type API struct {
	Server Server `mapstructure:"server" mask:"struct"`
}

// Server configuration settings.
type Server struct {
	// Port the server will bind to.
	Port int `mapstructure:"port"`
	// Security contains security-related configuration for the server, such as CORS.
	Security ServerSecurity `mapstructure:"security"`
}

// ServerSecurity represents security-related settings for the server.
type ServerSecurity struct {
	// CORS Cross-Origin Resource Sharing (CORS) settings for the server.
	CORS CORS `mapstructure:"cors"`
}

// CORS represents the CORS (Cross-Origin Resource Sharing) settings.
type CORS struct {
	// List of origins allowed to access the server (e.g., "foo").
	AllowOrigins []string `mapstructure:"allow_origins,omitempty"`
}
