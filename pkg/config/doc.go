// Package config loads the board settings the departure normalizer is built from.
//
// Settings are read from a YAML file, overridden by HAFASBOARD_* environment variables
// and validated with struct tags. They are returned by value and never stored globally.
package config
