// Package ctgorilla has middleware to use with the gorilla muxer.
package ctgorilla
