// Package config provides configuration loading, merging, and validation
// facilities for the phantom-vault daemon.
//
// Configuration is assembled from multiple sources in the following priority
// order (an earlier source wins for every field it sets):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig]; [Load] takes explicit
// arguments.
package config
