package storage

// Config holds configuration for the object storage holding import files and exports.
type Config struct {
	// Endpoint is host[:port], optionally prefixed with http:// or https://.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL enables TLS for endpoints given without a scheme.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket receives exports under exports/<baseName>/.
	Bucket string `mapstructure:"bucket" default:"roster"`
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and the wait for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
