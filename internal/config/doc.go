// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources. mergo only fills fields
// that are still zero, so the first source that sets a value wins:
//  1. Environment variables (after an optional .env file has been loaded
//     into the process environment)
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
