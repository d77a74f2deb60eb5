// Package cloudtrace aids propagating trace context between Go services that
// report to Google Cloud Trace.
//
// Summary
//
// This package and its subpackages contain bits of code to carry trace
// context across process boundaries using the x-cloud-trace-context header.
// The `propagation` package holds the header codec and the propagator that
// adapts it to the carrier-based propagation contract. The `trace` package
// holds the span context representation and the contracts the propagator
// implements. Inside the wrappers directory you find adapters for specific
// HTTP frameworks and for gRPC; the standard way to use this library is to
// install a wrapper at the edge of your service and read the span context
// from the request context as the code flows.
//
//	func main() {
//	  mux := http.NewServeMux()
//	  mux.HandleFunc("/hello", hello)
//	  http.ListenAndServe(":8080", ctnethttp.WrapHandler(mux))
//	}
//
// No global configuration is required: the propagator is stateless and every
// operation is a pure function of its inputs.
package cloudtrace
