// Package ctecho has middleware to use with the Echo router.
//
// Summary
//
// ctecho propagates incoming trace context for the Echo router via
// middleware. It is recommended to put this middleware first in the chain via
// Echo.Use() so every handler sees the caller's span context.
package ctecho
