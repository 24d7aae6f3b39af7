package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

// build merges the collected sources in order: a field set by an earlier
// source is never overwritten by a later one.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	jsonPath := b.firstSet(func(cfg *StructuredConfig) string { return cfg.JSONFilePath })
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withDotEnv() *configBuilder {
	path := b.firstSet(func(cfg *StructuredConfig) string { return cfg.DotEnvPath })
	if path == "" {
		path = defaultDotEnvPath
	}

	dotEnvCfg, err := parseDotEnv(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if dotEnvCfg != nil {
		b.configs = append(b.configs, dotEnvCfg)
	}

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

// firstSet returns the first non-empty value of field among the sources
// collected so far.
func (b *configBuilder) firstSet(field func(*StructuredConfig) string) string {
	for _, cfg := range b.configs {
		if v := field(cfg); v != "" {
			return v
		}
	}
	return ""
}
