package wrapper

import "github.com/dzonerzy/go-covwrap/osstr"

// Context is the snapshot of every environment value the wrapper consults.
// It is built once per process and never refreshed; components take it as a
// parameter instead of reading the environment themselves.
type Context struct {
	Names Names

	Active      osstr.Value
	CrateName   osstr.Value
	PkgName     osstr.Value
	Primary     osstr.Value
	TargetOnly  osstr.Value
	Target      osstr.Value
	DepCoverage osstr.Value
	Scope       osstr.Value
	Flags       osstr.Value
	Debug       osstr.Value
}

// LoadContext snapshots the process environment using DefaultNames.
func LoadContext() Context {
	return ContextFrom(DefaultNames(), osstr.Lookup)
}

// ContextFrom builds a snapshot from an arbitrary lookup function.
func ContextFrom(names Names, lookup func(string) osstr.Value) Context {
	return Context{
		Names:       names,
		Active:      lookup(names.Active),
		CrateName:   lookup(names.CrateName),
		PkgName:     lookup(names.PkgName),
		Primary:     lookup(names.Primary),
		TargetOnly:  lookup(names.TargetOnly),
		Target:      lookup(names.Target),
		DepCoverage: lookup(names.DepCoverage),
		Scope:       lookup(names.Scope),
		Flags:       lookup(names.Flags),
		Debug:       lookup(names.Debug),
	}
}

// ContextFromMap builds a snapshot from a name→value map using DefaultNames.
// Keys missing from vars are unset; keys mapped to "" are set and empty.
func ContextFromMap(vars map[string]string) Context {
	return ContextFrom(DefaultNames(), func(name string) osstr.Value {
		if v, ok := vars[name]; ok {
			return osstr.Of(v)
		}
		return osstr.Absent()
	})
}

// Get returns the snapshot value for a contract variable name.
func (c Context) Get(name string) (osstr.Value, bool) {
	n := c.Names
	switch name {
	case n.Active:
		return c.Active, true
	case n.CrateName:
		return c.CrateName, true
	case n.PkgName:
		return c.PkgName, true
	case n.Primary:
		return c.Primary, true
	case n.TargetOnly:
		return c.TargetOnly, true
	case n.Target:
		return c.Target, true
	case n.DepCoverage:
		return c.DepCoverage, true
	case n.Scope:
		return c.Scope, true
	case n.Flags:
		return c.Flags, true
	case n.Debug:
		return c.Debug, true
	}
	return osstr.Value{}, false
}
