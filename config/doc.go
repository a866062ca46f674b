// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Keys missing from the file keep their defaults, so an explicit zero
// threshold stays zero.
package config
