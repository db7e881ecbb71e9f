// Package app holds runtime configuration for the dhx binary: defaults,
// YAML file loading and validation.
package app
