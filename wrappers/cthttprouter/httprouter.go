package cthttprouter

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/tracecarrier/cloudtrace-go/wrappers/common"
)

// Middleware wraps httprouter handles so they see any trace context sent by
// the caller through the request context.
func Middleware(handle httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		r = r.WithContext(common.ContextFromRequest(r))
		handle(w, r, ps)
	}
}
