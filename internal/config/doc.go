// Package config defines the provisioning request configuration, its YAML
// loading and validation, the environment-tunable timeout set, and the
// interactive configuration wizard.
//
// A configuration is immutable once loaded: the provisioning pipeline only
// reads it.
package config
