package config

// MetricsConfig controls telemetry export settings.
// Enabled and Port read METRICS_ENABLED and METRICS_PORT. The OTEL_* fields
// carry explicit names so the standard unprefixed variables are honored.
type MetricsConfig struct {
	Enabled      bool   `default:"true"`
	Port         string `default:"9090"`
	OtlpEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"kbo-games-service"`
	OtlpInsecure bool   `envconfig:"OTEL_EXPORTER_OTLP_INSECURE" default:"true"`
}
