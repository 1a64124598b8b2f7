// Package config resolves the build configuration from flags, environment
// variables, and built-in defaults.
//
// Resolution follows the standard Viper precedence: flag > environment
// variable > default. A variable that is set but empty counts as unset and
// falls back to the default.
package config

import (
	"log/slog"
	"os"

	"github.com/spf13/viper"
)

// Built-in defaults, applied when neither a flag nor an environment variable
// provides a value.
const (
	// DefaultRegistryHost is the registry host and namespace the image tag is prefixed with.
	DefaultRegistryHost = "registry.atalink.com:10443/devops"
	// DefaultSwiftVersion is the OpenStack Swift version the image tag is suffixed with.
	DefaultSwiftVersion = "2.31.1"
	// DefaultBuildDefinition is the build-definition file consumed by the container build tool.
	DefaultBuildDefinition = "Dockerfile-py3"
	// DefaultContextDir is the build context directory.
	DefaultContextDir = "."
)

// Environment variables recognized as overrides.
const (
	// RegistryHostEnvVar overrides the registry host and namespace.
	RegistryHostEnvVar = "DOCKER_REGISTRY_HOST"
	// SwiftVersionEnvVar overrides the Swift version tag.
	SwiftVersionEnvVar = "OPENSTACK_SWIFT_VERSION"
)

// Viper keys for the configuration values. Flags bind to the same keys.
const (
	// RegistryKey is the viper key for the registry host and namespace.
	RegistryKey = "registry"
	// SwiftVersionKey is the viper key for the Swift version tag.
	SwiftVersionKey = "swift-version"
	// FileKey is the viper key for the build-definition file.
	FileKey = "file"
	// ContextKey is the viper key for the build context directory.
	ContextKey = "context"
)

// Config holds the resolved build configuration.
type Config struct {
	// RegistryHost is the registry host and namespace prefix for the image tag.
	RegistryHost string
	// SwiftVersion is the version identifier used as the image tag suffix.
	SwiftVersion string
	// BuildDefinition is the build-definition file passed to the build tool.
	BuildDefinition string
	// ContextDir is the directory used as the build context.
	ContextDir string
}

// NewViper creates a Viper instance with defaults registered and environment
// overrides bound. Flag bindings are added by the command layer.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(RegistryKey, DefaultRegistryHost)
	v.SetDefault(SwiftVersionKey, DefaultSwiftVersion)
	v.SetDefault(FileKey, DefaultBuildDefinition)
	v.SetDefault(ContextKey, DefaultContextDir)

	// BindEnv errors only on an empty key, which cannot happen here.
	_ = v.BindEnv(RegistryKey, RegistryHostEnvVar)
	_ = v.BindEnv(SwiftVersionKey, SwiftVersionEnvVar)

	return v
}

// Load resolves the configuration from the given Viper instance.
// Defaulting always succeeds, so Load never fails.
func Load(v *viper.Viper) *Config {
	return &Config{
		RegistryHost:    resolve(v, RegistryKey, RegistryHostEnvVar, DefaultRegistryHost),
		SwiftVersion:    resolve(v, SwiftVersionKey, SwiftVersionEnvVar, DefaultSwiftVersion),
		BuildDefinition: resolve(v, FileKey, "", DefaultBuildDefinition),
		ContextDir:      resolve(v, ContextKey, "", DefaultContextDir),
	}
}

// resolve reads a single value and applies empty-means-unset semantics.
// Viper already skips empty environment values; the extra guard covers a flag
// explicitly set to the empty string, which would otherwise produce an empty
// image tag segment.
func resolve(v *viper.Viper, key, envVar, fallback string) string {
	if envVar != "" {
		if value, exists := os.LookupEnv(envVar); exists && value == "" {
			slog.Warn("environment variable set but empty, using default",
				"variable", envVar,
				"default", fallback,
			)
		}
	}

	value := v.GetString(key)
	if value == "" {
		return fallback
	}

	return value
}
