package wrapper

import "strings"

// Reason explains a gate decision.
type Reason string

const (
	ReasonInactive       Reason = "coverage session not active"
	ReasonNoPackage      Reason = "not a package compilation"
	ReasonTargetMismatch Reason = "target differs from coverage target"
	ReasonOutOfScope     Reason = "outside dependency-coverage scope"
	ReasonInstrument     Reason = "instrument"
)

func (r Reason) String() string { return string(r) }

// Decision is the gate's verdict for one invocation.
type Decision struct {
	Instrument bool   `json:"instrument" yaml:"instrument"`
	Reason     Reason `json:"reason" yaml:"reason"`
	Scope      Scope  `json:"scope" yaml:"scope"`
}

// Scope selects which package compilations are instrumented once the basic
// rules have passed.
//
// ScopeAll trusts the caller to have filtered already (cargo only calls a
// RUSTC_WORKSPACE_WRAPPER for workspace members). ScopePrimary is for a
// plain RUSTC_WRAPPER, which sees every crate: only primary packages are
// instrumented unless the dependency-coverage marker is set.
type Scope int

const (
	ScopeAll Scope = iota
	ScopePrimary
)

// String returns the name used by the scope variable.
func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopePrimary:
		return "primary"
	default:
		return "unknown"
	}
}

// MarshalText lets Scope render by name in JSON and YAML reports.
func (s Scope) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// ParseScope parses "all" or "primary", ignoring case and surrounding spaces.
// The empty string is ScopeAll. ok is false for anything else.
func ParseScope(s string) (Scope, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return ScopeAll, true
	case "primary":
		return ScopePrimary, true
	}
	return ScopeAll, false
}

// Admits reports whether ctx falls inside the scope.
func (s Scope) Admits(ctx Context) bool {
	switch s {
	case ScopePrimary:
		return ctx.DepCoverage.IsSet() || ctx.Primary.IsSet()
	default:
		return true
	}
}

// ScopeSetting returns the scope requested by the environment. recognized is
// false when the variable holds an unknown value, in which case ScopeAll is
// used.
func (c Context) ScopeSetting() (scope Scope, recognized bool) {
	if !c.Scope.IsSet() {
		return ScopeAll, true
	}
	return ParseScope(c.Scope.Lossy())
}

// Decide evaluates the gate with the scope requested by the environment.
func Decide(ctx Context) Decision {
	scope, _ := ctx.ScopeSetting()
	return DecideScoped(ctx, scope)
}

// DecideScoped evaluates the gate with an explicit scope. The first matching
// rule wins.
func DecideScoped(ctx Context, scope Scope) Decision {
	d := Decision{Scope: scope}
	switch {
	case !ctx.Active.IsSet():
		d.Reason = ReasonInactive
	case !ctx.CrateName.IsSet() && !ctx.PkgName.IsSet():
		// version probes and other non-package invocations
		d.Reason = ReasonNoPackage
	case ctx.TargetOnly.IsSet() && ctx.Target.IsSet() && ctx.TargetOnly.Raw() != ctx.Target.Raw():
		d.Reason = ReasonTargetMismatch
	case !scope.Admits(ctx):
		d.Reason = ReasonOutOfScope
	default:
		d.Instrument, d.Reason = true, ReasonInstrument
	}
	return d
}

// ShouldInstrument is Decide reduced to its verdict.
func ShouldInstrument(ctx Context) bool { return Decide(ctx).Instrument }
