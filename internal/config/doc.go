// Package config provides configuration loading, merging, and validation
// facilities for the go-stay server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. .env file
//  5. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
