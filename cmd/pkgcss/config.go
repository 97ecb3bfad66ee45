package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/pkgcss"
)

const defaultConfigPath = ".pkgcss.yaml"

var k = koanf.New(".")

// listKeys are the config keys whose env values are comma separated
var listKeys = map[string]bool{
	"headers.exclude": true,
}

// flagKeys maps flag names to config keys where the two differ
var flagKeys = map[string]string{
	"header-suffix": "headers.suffix",
	"exclude":       "headers.exclude",
	"link-prefix":   "link.prefix",
	"link-suffix":   "link.suffix",
	"output-format": "list.format",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	k = koanf.New(".")

	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	fs := cmd.Flags()
	provider := posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		key := f.Name
		if mapped, ok := flagKeys[key]; ok {
			key = mapped
		}
		return key, posflag.FlagVal(fs, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (PKGCSS_* prefix)
	if err := k.Load(env.ProviderWithValue("PKGCSS_", ".", func(s, v string) (string, interface{}) {
		// PKGCSS_LINK_PREFIX -> link.prefix
		// PKGCSS_DEDUPE -> dedupe
		key := strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "PKGCSS_")),
			"_", ".",
		)
		// PKGCSS_HEADERS_EXCLUDE=fwd.h,Types.h -> list
		if listKeys[key] {
			return key, splitList(v)
		}
		return key, v
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfig constructs the library's Config struct from koanf state.
func buildConfig(sourceDir string) (pkgcss.Config, error) {
	config := pkgcss.DefaultConfig(sourceDir)

	config.Marker = getStringWithDefault("marker", config.Marker)
	config.Headers.Suffix = getStringWithDefault("headers.suffix", config.Headers.Suffix)
	if exclude := k.Strings("headers.exclude"); len(exclude) > 0 {
		config.Headers.ExcludeSuffixes = exclude
	}
	config.Headers.RespectGitignore = getBoolWithDefault("gitignore", false)

	config.Links.Prefix = getStringWithDefault("link.prefix", config.Links.Prefix)
	config.Links.Suffix = getStringWithDefault("link.suffix", config.Links.Suffix)

	config.Dedupe = getBoolWithDefault("dedupe", false)
	config.Validate = getBoolWithDefault("validate", true)
	config.Strict = getBoolWithDefault("strict", false)

	if k.Exists("colors") {
		var specs []pkgcss.ColorSpec
		if err := k.Unmarshal("colors", &specs); err != nil {
			return config, fmt.Errorf("reading colors: %w", err)
		}
		table, err := pkgcss.NewColorTable(specs)
		if err != nil {
			return config, fmt.Errorf("invalid colors: %w", err)
		}
		config.Colors = table
	}

	return config, nil
}

// splitList splits a comma separated value, dropping empty items
func splitList(v string) []string {
	items := []string{}
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// getStringWithDefault returns the value for key, or defaultVal when unset or empty.
func getStringWithDefault(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithDefault returns the value for key, or defaultVal when unset.
func getBoolWithDefault(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getIntWithDefault returns the value for key, or defaultVal when unset.
func getIntWithDefault(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
