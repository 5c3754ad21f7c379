// Package config loads runtime settings for the TruthGuard CLI from three
// sources, later ones winning: built-in defaults, an optional JSON file
// (path via -c/-config), and command-line flags.
package config
