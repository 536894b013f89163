package wrapper

import (
	"context"
	"io"
	"os"
	"strconv"

	"github.com/dzonerzy/go-covwrap/diag"
)

// Tags printed in front of the wrapper's own lines.
const (
	DebugTag = "cargo-llvm-cov wrapper:"
	ErrorTag = "cargo-llvm-cov wrapper error:"
)

// Runner ties decoding, the gate, injection and execution together for one
// invocation.
type Runner struct {
	Env  Context
	Exec *Executor
	Log  *diag.Logger
	// Scope overrides the scope requested through the environment.
	Scope *Scope
}

// Plan is everything the runner decided before spawning the delegate.
type Plan struct {
	Invocation
	Decision Decision
	Argv     []string // final compiler arguments
}

// NewRunner builds a runner for the current process: environment snapshot,
// inherited streams, and a stderr logger that includes debug records only
// when the debug variable is set.
func NewRunner() *Runner {
	env := LoadContext()
	return &Runner{
		Env:  env,
		Exec: DefaultExecutor(),
		Log:  NewLogger(os.Stderr, env),
	}
}

// NewLogger returns the logger the wrapper uses for env, writing to w.
func NewLogger(w io.Writer, env Context) *diag.Logger {
	l := diag.New(w).
		SetPrefix(diag.LevelDebug, DebugTag).
		SetPrefix(diag.LevelError, ErrorTag).
		WithLevel(diag.LevelError)
	if env.Debug.IsSet() {
		l.WithLevel(diag.LevelDebug)
	}
	return l
}

// Decide runs the gate, honouring Scope when set.
func (r *Runner) Decide() Decision {
	if r.Scope != nil {
		return DecideScoped(r.Env, *r.Scope)
	}
	return Decide(r.Env)
}

// Plan decodes argv, evaluates the gate and builds the final argument
// vector without running anything. When the gate says no, Argv is the
// decoded argument slice itself.
func (r *Runner) Plan(argv []string) (Plan, error) {
	inv, err := Decode(argv)
	if err != nil {
		return Plan{}, err
	}
	p := Plan{Invocation: inv, Decision: r.Decide(), Argv: inv.Args}
	r.logDecision(p.Decision)
	if !p.Decision.Instrument {
		return p, nil
	}
	p.Argv, err = Inject(r.Env, inv.Args)
	if err != nil {
		return p, err
	}
	return p, nil
}

// Run plans the invocation and executes the delegate, blocking until it
// exits.
func (r *Runner) Run(ctx context.Context, argv []string) error {
	p, err := r.Plan(argv)
	if err != nil {
		return err
	}
	x := r.Exec
	if x == nil {
		x = DefaultExecutor()
	}
	return x.Run(ctx, p.Delegate, p.Argv)
}

func (r *Runner) logDecision(d Decision) {
	if !r.Env.Debug.IsSet() || !r.Log.Enabled(diag.LevelDebug) {
		return
	}
	e := r.Env
	line := "crate=" + e.CrateName.Lossy() +
		", pkg=" + e.PkgName.Lossy() +
		", primary=" + strconv.FormatBool(e.Primary.IsSet()) +
		", instrument=" + strconv.FormatBool(d.Instrument)
	if _, ok := e.ScopeSetting(); !ok && r.Scope == nil {
		line += ", scope=" + e.Scope.Lossy() + " (unknown, using all)"
	}
	r.Log.Debug("%s", line)
}

// Main runs the wrapper for argv and returns the process exit code. Internal
// failures are reported as one line on stderr.
func Main(argv []string) int {
	r := NewRunner()
	err := r.Run(context.Background(), argv)
	if Reportable(err) {
		r.Log.Error("%v", err)
	}
	return ExitCode(err)
}
