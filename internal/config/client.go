// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures cmd/client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"BLOG_"`

	// Token is a previously issued session token used by the logout and
	// me commands.
	// Env: BLOG_TOKEN
	Token string `env:"BLOG_TOKEN"`
}

// ClientAdapter holds the settings of the HTTP client of the blog auth API.
type ClientAdapter struct {
	// HTTPAddress is the server base URL; the scheme defaults to http.
	// Env: BLOG_SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds every request made by the client.
	// Env: BLOG_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetClientConfig merges defaults, environment variables and the flags in
// args, later sources overriding earlier non-zero fields. The positional
// arguments left after the flags are returned untouched.
//
// Flags:
//
//	-a server address, e.g. localhost:8888
//	-t request timeout (e.g., "10s")
//	-token session token
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    "localhost:8888",
			RequestTimeout: 10 * time.Second,
		},
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, err
	}

	flagCfg := &ClientConfig{}
	fs := flag.NewFlagSet("go-blog-client", flag.ContinueOnError)
	fs.StringVar(&flagCfg.Adapter.HTTPAddress, "a", "", "Server address")
	fs.DurationVar(&flagCfg.Adapter.RequestTimeout, "t", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&flagCfg.Token, "token", "", "Session token")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	for _, src := range []*ClientConfig{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return nil, nil, fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return cfg, fs.Args(), nil
}
