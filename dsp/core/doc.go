// Package core holds the configuration and numeric helpers shared by the
// synthesis, banding and mapping packages.
package core
