// Package config provides configuration loading, merging, and validation
// facilities for the portal server.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are applied after merging, then the result is validated.
// The main entry point is [GetStructuredConfig].
package config
