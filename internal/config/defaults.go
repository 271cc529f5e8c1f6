package config

import "time"

const (
	defaultHTTPAddress     = "0.0.0.0:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultRolesClaim      = "roles"
	defaultRolePrefix      = "ROLE_"
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 4
	defaultExporter        = ExporterNone
	defaultServiceName     = "customer-service"
)

// Supported values of [Telemetry.Exporter].
const (
	ExporterNone   = "none"
	ExporterStdout = "stdout"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			RolesClaim: defaultRolesClaim,
			RolePrefix: defaultRolePrefix,
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: defaultMaxOpenConns,
				MaxIdleConns: defaultMaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Telemetry: Telemetry{
			Exporter:    defaultExporter,
			ServiceName: defaultServiceName,
		},
	}
}
