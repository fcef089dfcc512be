// Package config manages user-level settings stored at ~/.fortdoc/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the HTTP timeout used when fetching remote interchange documents and the
// diagnostic verbosity.
package config
