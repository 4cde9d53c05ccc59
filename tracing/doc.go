/*
Package tracing provides very basic distributed tracing.  The key types in this package are Span,
which contains metadata about the execution of an arbitrary section of code, and Status, which
records the outcome of that execution using the canonical gRPC/OpenCensus status codes.

Statuses are immutable.  StatusOf returns a shared instance for the common success case, so
statuses should always be compared with Status.Equal or tested with Status.IsOK rather than
by pointer.
*/
package tracing
