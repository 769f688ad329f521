package mex

import (
	"go.uber.org/zap"

	"github.com/matlabw/mex-runtime/errors"
	"github.com/matlabw/mex-runtime/hostapi"
	"github.com/matlabw/mex-runtime/mx"
)

// Function is the extension point the gateway dispatches to. The
// implementation fills output slots by assigning owning Arrays into lhs
// and reads its arguments through the immutable views in rhs. Returning
// an error aborts the invocation; the gateway reports it through the
// host's error-raise primitive.
type Function interface {
	Call(lhs []mx.Array, rhs []mx.ArrayCref) error
}

// FunctionFunc adapts a plain function to the Function interface.
type FunctionFunc func(lhs []mx.Array, rhs []mx.ArrayCref) error

// Call invokes the function.
func (f FunctionFunc) Call(lhs []mx.Array, rhs []mx.ArrayCref) error {
	return f(lhs, rhs)
}

// NewGateway wraps fn in the entry point the host invokes. The
// trampoline is the one place where error unwinding meets the host
// boundary: every failure, including a panic in fn, is converted to a
// single error-raise call, and partially filled output slots are
// destroyed before the raise. No failure crosses the boundary by any
// other mechanism.
func NewGateway(fn Function) hostapi.EntryPoint {
	return func(out []hostapi.Handle, in []hostapi.Handle) {
		h := hostapi.Current()
		log := Logger()

		log.Debug("gateway dispatch",
			zap.Int("nlhs", len(out)),
			zap.Int("nrhs", len(in)))

		// Suppress host-side trapping while user code runs; the prior
		// state is restored on every exit path, including the raise.
		trap := NewTrapGuard(true)
		defer trap.Restore()

		rhs := make([]mx.ArrayCref, len(in))
		for i, raw := range in {
			cref, err := mx.NewCref(raw)
			if err != nil {
				raise(h, log, errors.Newf("matlabw:mex:gateway", "input argument %d is invalid", i))
				return
			}
			rhs[i] = cref
		}

		lhs := make([]mx.Array, len(out))
		if err := call(fn, lhs, rhs); err != nil {
			for i := range lhs {
				lhs[i].Destroy()
			}
			raise(h, log, err)
			return
		}

		for i := range lhs {
			out[i] = lhs[i].Release()
		}
	}
}

// call runs the user functor, converting a panic into an error so the
// unwind never reaches the host boundary.
func call(fn Function, lhs []mx.Array, rhs []mx.ArrayCref) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("matlabw:mex:gateway", "panic in extension function: %v", r)
		}
	}()
	return fn.Call(lhs, rhs)
}

func raise(h hostapi.Host, log *zap.Logger, err error) {
	id := errors.IDOf(err)
	msg := err.Error()
	if id == "" {
		id = "matlabw:mex:Function:error"
	} else if e, ok := err.(*errors.Error); ok {
		msg = e.Detail
	}

	log.Debug("gateway raise",
		zap.String("id", id),
		zap.String("message", msg))
	h.RaiseError(id, msg)
}
