package main

import (
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/ulfheim/tlswire"
)

// probeConfig is the resolved configuration for one probe run.
type probeConfig struct {
	Server  string
	SNI     string
	Timeout time.Duration
	Suites  []tlswire.CipherSuite
}

func defaultConfig() probeConfig {
	return probeConfig{
		Timeout: 10 * time.Second,
		Suites: []tlswire.CipherSuite{
			tlswire.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
			tlswire.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			tlswire.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
			tlswire.TLS_RSA_WITH_AES_128_GCM_SHA256,
		},
	}
}

// fileConfig maps probe.toml keys.
type fileConfig struct {
	Server         string   `toml:"server"`
	SNI            string   `toml:"sni"`
	TimeoutSeconds int      `toml:"timeout_seconds"`
	CipherSuites   []string `toml:"cipher_suites"`
}

// loadConfig overlays a TOML file onto the defaults.
func loadConfig(path string) (probeConfig, error) {
	cfg := defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return probeConfig{}, errors.Wrap(err, "load probe config")
	}

	if meta.IsDefined("server") {
		cfg.Server = strings.TrimSpace(raw.Server)
	}
	if meta.IsDefined("sni") {
		cfg.SNI = strings.TrimSpace(raw.SNI)
	}
	if meta.IsDefined("timeout_seconds") {
		if raw.TimeoutSeconds <= 0 {
			return probeConfig{}, errors.Errorf("timeout_seconds must be positive, got %d", raw.TimeoutSeconds)
		}
		cfg.Timeout = time.Duration(raw.TimeoutSeconds) * time.Second
	}
	if meta.IsDefined("cipher_suites") {
		suites := make([]tlswire.CipherSuite, 0, len(raw.CipherSuites))
		for _, name := range raw.CipherSuites {
			cs, ok := tlswire.CipherSuiteByName(strings.TrimSpace(name))
			if !ok {
				return probeConfig{}, errors.Errorf("unknown cipher suite %q", name)
			}
			suites = append(suites, cs)
		}
		if len(suites) == 0 {
			return probeConfig{}, errors.New("cipher_suites is empty")
		}
		cfg.Suites = suites
	}
	return cfg, nil
}
