package wrapper

// Names holds the environment variable names the wrapper reads. The defaults
// are the ones set by cargo and cargo-llvm-cov.
type Names struct {
	Active      string // coverage session marker
	CrateName   string
	PkgName     string
	Primary     string // set by cargo for workspace members being built directly
	TargetOnly  string // restrict instrumentation to one target triple
	Target      string // triple of the unit being compiled
	DepCoverage string // instrument dependencies too
	Scope       string // "all" or "primary", see Scope
	Flags       string // space-delimited flags to prepend
	Debug       string // emit one diagnostic line per invocation
}

// DefaultNames returns the cargo-llvm-cov variable names.
func DefaultNames() Names {
	return Names{
		Active:      "CARGO_LLVM_COV",
		CrateName:   "CARGO_CRATE_NAME",
		PkgName:     "CARGO_PKG_NAME",
		Primary:     "CARGO_PRIMARY_PACKAGE",
		TargetOnly:  "CARGO_LLVM_COV_TARGET_ONLY",
		Target:      "TARGET",
		DepCoverage: "CARGO_LLVM_COV_DEP_COVERAGE",
		Scope:       "CARGO_LLVM_COV_WRAPPER_SCOPE",
		Flags:       "CARGO_LLVM_COV_FLAGS",
		Debug:       "CARGO_LLVM_COV_WRAPPER_DEBUG",
	}
}

// Variable describes one entry of the environment contract.
type Variable struct {
	Name string `json:"name" yaml:"name"`
	Role string `json:"role" yaml:"role"`
}

// Variables lists the contract in a stable order.
func (n Names) Variables() []Variable {
	return []Variable{
		{n.Active, "presence activates coverage mode"},
		{n.CrateName, "crate being compiled (cargo)"},
		{n.PkgName, "package being compiled (cargo)"},
		{n.Primary, "presence marks a primary workspace package (cargo)"},
		{n.TargetOnly, "instrument only when TARGET equals this triple"},
		{n.Target, "target triple of this compilation (cargo)"},
		{n.DepCoverage, "presence instruments dependencies under the primary scope"},
		{n.Scope, "gate scope: all (default) or primary"},
		{n.Flags, "space-delimited flags prepended to the compiler arguments"},
		{n.Debug, "presence prints one diagnostic line per invocation"},
	}
}

// Known reports whether name is part of the contract.
func (n Names) Known(name string) bool {
	for _, v := range n.Variables() {
		if v.Name == name {
			return true
		}
	}
	return false
}
