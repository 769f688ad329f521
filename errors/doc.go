// Package errors provides the structured error type used across the
// array facade.
//
// A single error kind crosses every boundary: an identifier naming the
// failing operation plus a message. Identifiers follow the host's
// convention of colon-separated segments, e.g.
//
//	matlabw:mx:Array:getRank
//	matlabw:mex:putVariable
//
// The gateway trampoline forwards the identifier and message verbatim to
// the host's error-raise primitive, so the user sees exactly the id the
// failing site supplied. Errors.Is matches on identifier, which lets
// callers test for a failing operation without depending on message text.
package errors
