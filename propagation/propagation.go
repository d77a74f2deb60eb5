// Package propagation includes types and functions for marshalling and
// unmarshalling trace context headers between the Google Cloud Trace wire
// format and an internal representation. It provides support for traces that
// cross process boundaries by way of the x-cloud-trace-context header.
package propagation

import (
	"fmt"
)

// PropagationError wraps any error encountered while parsing or serializing
// trace propagation contexts.
type PropagationError struct {
	message      string
	wrappedError error
}

// Error returns a formatted message containing the error.
func (p *PropagationError) Error() string {
	if p.wrappedError == nil {
		return p.message
	}
	return fmt.Sprintf(p.message, p.wrappedError)
}
