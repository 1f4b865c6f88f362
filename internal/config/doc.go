// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source to set a field wins; later sources fill only what
// is still unset):
//  1. Environment variables (a .env file in the working directory is loaded
//     into the environment first, when present)
//  2. Command-line flags
//  3. JSON config file
//  4. Hardcoded defaults
//
// The main entry points are [GetConfig] for library consumers and
// [GetCLIConfig] for the sitectl binary, which additionally parses
// command-line flags.
package config
