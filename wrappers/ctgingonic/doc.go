// Package ctgingonic has middleware to use with the gin-gonic router.
package ctgingonic
