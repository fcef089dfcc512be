// Package manifest handles parsing and validation of fortdoc.yaml project
// files. A manifest names the project, points at its published base URL and
// output directories, declares the external documentation sources to
// federate with, and defines the macro aliases available in documentation
// text. Validation runs against the embedded JSON Schema.
package manifest
