// Package config provides the YAML configuration for the extraction
// tool.
//
// Configuration is optional: the defaults match the log prefixes of a
// stock ubxlib build, and most users never need a config file. A file
// is only required when the producing system logs GNSS traffic under
// different marker strings, for example:
//
//	markers:
//	  response: "GNSS RX:"
//	  command: "GNSS TX:"
//	output:
//	  extension: ubx
//
// Fields left out of the file keep their defaults.
package config
