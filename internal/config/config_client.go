package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

const (
	defaultClientAddress = "http://localhost:8080"
	defaultClientTimeout = 10 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the customer service
	// (e.g. "http://localhost:8080").
	// Env: CLIENT_ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// Token is sent as "Authorization: Bearer <token>" when non-empty.
	// Env: CLIENT_ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// ClientConfig is the top-level configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains client transport address, timeout and credentials.
	Adapter ClientAdapter `envPrefix:"CLIENT_ADAPTER_"`
}

// GetClientConfig builds and validates the client configuration from
// defaults, environment variables and the flags in args. It returns the
// positional arguments left after flag parsing.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	var flagCfg ClientConfig
	fs := flag.NewFlagSet("customer-client", flag.ContinueOnError)
	fs.StringVar(&flagCfg.Adapter.HTTPAddress, "a", "", "Customer service base URL")
	fs.DurationVar(&flagCfg.Adapter.RequestTimeout, "t", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&flagCfg.Adapter.Token, "token", "", "Bearer token")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    defaultClientAddress,
			RequestTimeout: defaultClientTimeout,
		},
	}
	for _, src := range []*ClientConfig{envCfg, &flagCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}
