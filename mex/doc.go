// Package mex is the execution-side companion to package mx. It carries
// the gateway trampoline that bridges host invocations to Go extension
// functions, workspace variable interop, and scoped guards over host
// execution state (trap flag, unload lock).
//
// The trampoline is the single point where Go error values meet the
// host boundary: failures and panics inside an extension function are
// converted to one error-raise call and never unwind into the host.
package mex
