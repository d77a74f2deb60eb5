// Package ctgoji has Middleware to use with the Goji muxer.
//
// Summary
//
// ctgoji's Middleware slots into (*goji.Mux).Use so every pattern the mux
// dispatches sees the caller's trace context in the request context.
package ctgoji
