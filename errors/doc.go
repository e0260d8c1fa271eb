// Package errors provides MappedError, a structured error value carrying a
// message, a closed ErrorType classification and an optional ErrorCode.
//
// Every MappedError renders to a single canonical line
//
//	[code=<code|none>,error_type=<type>] <message>
//
// and Parse turns such a line back into an equivalent value. Malformed input
// never fails to parse: it degrades to an UndefinedError carrying the text
// verbatim.
//
// Constructing an error emits one log line through the package Sink: a
// warning for expected errors, an error for unexpected ones. The default sink
// writes through zerolog; SetSink replaces it.
//
// Chaining is flat. Passing a cause to New folds the cause's message into the
// new message; no linked structure is kept.
package errors
