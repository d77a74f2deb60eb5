// Package cthttprouter has middleware for the julienschmidt httprouter. Wrap
// each route's Handle so the caller's trace context is available in the
// request context.
package cthttprouter
