// Package ctnethttp has wrappers for the standard net/http package.
//
// Summary
//
// WrapHandler and WrapHandlerFunc pick up the x-cloud-trace-context header
// from incoming requests and make the caller's span context available to the
// handler through the request context. WrapRoundTripper does the reverse for
// outbound requests made with an http.Client.
package ctnethttp
