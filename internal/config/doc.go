// Package config resolves and validates the run configuration for tidy.
//
// The tool reads no configuration files; everything the core needs arrives as
// CLI flags and is folded into a single Config value here. The package
// expands user paths (including tilde shortcuts), defaults the target to the
// current working directory, and canonicalizes log settings.
//
// Always obtain settings through Resolve so downstream code receives
// sanitized absolute paths and clear validation errors.
package config
