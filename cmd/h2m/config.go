package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rgonek/html-md-converter/converter"
	"gopkg.in/yaml.v3"
)

const (
	presetBalanced = "balanced"
	presetStrict   = "strict"
	presetGitHub   = "github"
)

// options is everything the command needs besides the converter config.
type options struct {
	Config   converter.Config
	Sanitize bool
	BaseURL  string
}

// fileConfig is the YAML shape accepted by -config.
type fileConfig struct {
	Preset           string `yaml:"preset"`
	FencedCodeBlocks *bool  `yaml:"fencedCodeBlocks"`
	ErrorPolicy      string `yaml:"errorPolicy"`
	DiagnosticLevel  string `yaml:"diagnosticLevel"`
	MaxDepth         *int   `yaml:"maxDepth"`
	Sanitize         *bool  `yaml:"sanitize"`
	BaseURL          string `yaml:"baseURL"`
}

// flagOverrides holds command line switches; zero values leave settings untouched.
type flagOverrides struct {
	Fenced   bool
	Strict   bool
	Sanitize bool
	MaxDepth int
	BaseURL  string
}

func presetConfig(preset string) (converter.Config, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetBalanced:
		return converter.Config{}, nil
	case presetStrict:
		return converter.Config{
			ErrorPolicy: converter.ErrorPolicyRaise,
		}, nil
	case presetGitHub:
		return converter.Config{
			FencedCodeBlocks: true,
			DiagnosticLevel:  converter.SeverityWarn,
		}, nil
	default:
		return converter.Config{}, fmt.Errorf("unknown preset %q (allowed: balanced, strict, github)", preset)
	}
}

func loadFileConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fc, nil
}

// resolveOptions applies, in order, the preset, the config file and the flags.
// A preset named in the config file is used only when the flag preset is empty.
func resolveOptions(preset string, fc *fileConfig, flags flagOverrides) (options, error) {
	if preset == "" && fc != nil {
		preset = fc.Preset
	}

	cfg, err := presetConfig(preset)
	if err != nil {
		return options{}, err
	}
	opts := options{Config: cfg}

	if fc != nil {
		if fc.FencedCodeBlocks != nil {
			opts.Config.FencedCodeBlocks = *fc.FencedCodeBlocks
		}
		if fc.ErrorPolicy != "" {
			opts.Config.ErrorPolicy = converter.ErrorPolicy(fc.ErrorPolicy)
		}
		if fc.DiagnosticLevel != "" {
			opts.Config.DiagnosticLevel = converter.Severity(fc.DiagnosticLevel)
		}
		if fc.MaxDepth != nil {
			opts.Config.MaxDepth = *fc.MaxDepth
		}
		if fc.Sanitize != nil {
			opts.Sanitize = *fc.Sanitize
		}
		if fc.BaseURL != "" {
			opts.BaseURL = fc.BaseURL
		}
	}

	if flags.Fenced {
		opts.Config.FencedCodeBlocks = true
	}
	if flags.Strict {
		opts.Config.ErrorPolicy = converter.ErrorPolicyRaise
	}
	if flags.Sanitize {
		opts.Sanitize = true
	}
	if flags.MaxDepth > 0 {
		opts.Config.MaxDepth = flags.MaxDepth
	}
	if flags.BaseURL != "" {
		opts.BaseURL = flags.BaseURL
	}

	return opts, nil
}
