package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/matlabw/mex-runtime/examples/arrayfill"
	"github.com/matlabw/mex-runtime/examples/matrixdivide"
	"github.com/matlabw/mex-runtime/examples/mkcomplexobj"
	"github.com/matlabw/mex-runtime/hostapi"
	"github.com/matlabw/mex-runtime/hostmock"
	"github.com/matlabw/mex-runtime/mex"
	"github.com/matlabw/mex-runtime/mx"
)

// sample describes one registered extension for the runner.
type sample struct {
	name   string
	desc   string
	entry  hostapi.EntryPoint
	nlhs   int
	params []paramInfo
}

type paramInfo struct {
	name string
	hint string
}

func samples() []sample {
	return []sample{
		{
			name:  "arrayfill",
			desc:  "fill a 2x2 uninitialized double matrix",
			entry: arrayfill.Entry,
			nlhs:  1,
		},
		{
			name:  "matrixdivide",
			desc:  "solve A*X = B for a square A and column vector B",
			entry: matrixdivide.Entry,
			nlhs:  1,
			params: []paramInfo{
				{name: "A", hint: "2x2:1,3,2,4"},
				{name: "B", hint: "2x1:5,11"},
			},
		},
		{
			name:  "mkcomplexobj",
			desc:  "build a Complex object from re and im scalars",
			entry: mkcomplexobj.Entry,
			nlhs:  1,
			params: []paramInfo{
				{name: "re", hint: "1.5"},
				{name: "im", hint: "-2"},
			},
		},
	}
}

func findSample(name string) (sample, bool) {
	for _, s := range samples() {
		if s.name == name {
			return s, true
		}
	}
	return sample{}, false
}

func main() {
	var (
		extName     = flag.String("ext", "", "Extension to run")
		list        = flag.Bool("list", false, "List registered extensions and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose gateway logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		mex.SetLogger(logger)
	}

	if *list {
		listSamples()
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *extName == "" {
		fmt.Fprintln(os.Stderr, "Usage: mexrun -ext <name> [arg ...]")
		fmt.Fprintln(os.Stderr, "       mexrun -list")
		fmt.Fprintln(os.Stderr, "       mexrun -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "Arguments are scalars (1.5) or matrices (ROWSxCOLS:v1,v2,... column-major).")
		os.Exit(1)
	}

	if err := run(*extName, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func listSamples() {
	all := samples()
	sort.Slice(all, func(i, j int) bool { return all[i].name < all[j].name })
	fmt.Println("Registered extensions:")
	for _, s := range all {
		var params []string
		for _, p := range s.params {
			params = append(params, p.name)
		}
		fmt.Printf("  %s(%s) - %s\n", s.name, strings.Join(params, ", "), s.desc)
	}
}

func run(name string, rawArgs []string) error {
	s, ok := findSample(name)
	if !ok {
		return fmt.Errorf("unknown extension %q (try -list)", name)
	}
	if len(rawArgs) != len(s.params) {
		return fmt.Errorf("%s takes %d argument(s), got %d", s.name, len(s.params), len(rawArgs))
	}

	host := hostmock.New()
	hostapi.Bind(host)

	in := make([]hostapi.Handle, len(rawArgs))
	for i, raw := range rawArgs {
		a, err := parseArg(raw)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		defer a.Destroy()
		in[i] = a.Raw()
	}

	fmt.Printf("Calling %s...\n", s.name)
	out := make([]hostapi.Handle, s.nlhs)
	s.entry(out, in)

	if raised := host.Raised(); len(raised) > 0 {
		return fmt.Errorf("%s: %s", raised[0].ID, raised[0].Message)
	}

	for i := range out {
		result := mx.Adopt(out[i])
		fmt.Printf("out[%d] = %s\n", i, describe(result))
		if i == 0 {
			if err := storeAns(result); err == nil {
				fmt.Println("stored as base workspace variable ans")
			}
		}
		result.Destroy()
	}
	return nil
}

// storeAns binds a copy of the first output in the base workspace, the
// way the host itself binds ans after an expression.
func storeAns(result mx.Array) error {
	cref, err := result.Cref()
	if err != nil {
		return err
	}
	return mex.PutVariable(hostapi.WorkspaceBase, "ans", cref)
}

// parseArg builds an owning array from a command-line argument: either
// a bare scalar or ROWSxCOLS:Elements with column-major elements.
func parseArg(raw string) (mx.Array, error) {
	shape, elems, ok := strings.Cut(raw, ":")
	if !ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return mx.Array{}, fmt.Errorf("invalid scalar %q", raw)
		}
		a, err := mx.MakeNumericScalar(v)
		if err != nil {
			return mx.Array{}, err
		}
		return a.Array, nil
	}

	rs, cs, ok := strings.Cut(shape, "x")
	if !ok {
		return mx.Array{}, fmt.Errorf("invalid shape %q, want ROWSxCOLS", shape)
	}
	rows, err := strconv.Atoi(rs)
	if err != nil {
		return mx.Array{}, fmt.Errorf("invalid row count %q", rs)
	}
	cols, err := strconv.Atoi(cs)
	if err != nil {
		return mx.Array{}, fmt.Errorf("invalid column count %q", cs)
	}

	fields := strings.Split(elems, ",")
	if len(fields) != rows*cols {
		return mx.Array{}, fmt.Errorf("%dx%d needs %d elements, got %d", rows, cols, rows*cols, len(fields))
	}
	a, err := mx.MakeNumericArray[float64](rows, cols)
	if err != nil {
		return mx.Array{}, err
	}
	data, err := a.Data()
	if err != nil {
		a.Destroy()
		return mx.Array{}, err
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			a.Destroy()
			return mx.Array{}, fmt.Errorf("invalid element %q", f)
		}
		data[i] = v
	}
	return a.Array, nil
}

// describe renders an array for the terminal: class, shape, and the
// contents for the kinds the samples produce.
func describe(a mx.Array) string {
	className, err := a.ClassName()
	if err != nil {
		return "<invalid>"
	}
	dims, err := a.Dims()
	if err != nil {
		return "<invalid>"
	}
	shape := make([]string, len(dims))
	for i, d := range dims {
		shape[i] = strconv.Itoa(d)
	}
	head := fmt.Sprintf("%s %s", strings.Join(shape, "x"), className)

	class, _ := a.ClassID()
	switch class {
	case hostapi.ClassDouble:
		cref, err := a.Cref()
		if err != nil {
			return head
		}
		data, err := mx.DataAs[float64]("mexrun:describe", cref)
		if err != nil {
			return head
		}
		vals := make([]string, len(data))
		for i, v := range data {
			vals[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		return head + " [" + strings.Join(vals, " ") + "]"
	case hostapi.ClassChar:
		if s, err := mx.ToASCII(a); err == nil {
			return head + " " + strconv.Quote(s)
		}
		return head
	case hostapi.ClassObject:
		ref, err := a.Ref()
		if err != nil {
			return head
		}
		var props []string
		for _, name := range []string{"re", "im"} {
			if prop, ok, err := mx.GetPropertyOf(ref, name); err == nil && ok {
				if v, err := mx.ScalarAs[float64]("mexrun:describe", prop); err == nil {
					props = append(props, fmt.Sprintf("%s=%g", name, v))
				}
			}
		}
		if len(props) > 0 {
			return head + " {" + strings.Join(props, ", ") + "}"
		}
		return head
	default:
		return head
	}
}
