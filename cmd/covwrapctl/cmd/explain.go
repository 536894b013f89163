package cmd

import (
	"fmt"
	"io"
	"maps"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dzonerzy/go-covwrap/diag"
	"github.com/dzonerzy/go-covwrap/internal/fuzzy"
	"github.com/dzonerzy/go-covwrap/wrapper"
)

type explainFlags struct {
	envFiles []string
	sets     []string
	cleanEnv bool
	scope    string
}

type variableReport struct {
	Name  string `json:"name" yaml:"name"`
	Set   bool   `json:"set" yaml:"set"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

type explainReport struct {
	Variables  []variableReport `json:"variables" yaml:"variables"`
	Decision   wrapper.Decision `json:"decision" yaml:"decision"`
	Flags      []string         `json:"flags" yaml:"flags"`
	FlagsError string           `json:"flags_error,omitempty" yaml:"flags_error,omitempty"`
	Delegate   string           `json:"delegate,omitempty" yaml:"delegate,omitempty"`
	Argv       []string         `json:"argv,omitempty" yaml:"argv,omitempty"`
	Warnings   []string         `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func newExplainCmd(o *options) *cobra.Command {
	f := &explainFlags{}
	cmd := &cobra.Command{
		Use:   "explain [flags] [-- compiler [args...]]",
		Short: "Show the gate decision and the command covwrap would run",
		Long: `explain builds the same environment snapshot covwrap builds, evaluates the
instrumentation gate and, when a compiler command line follows "--", prints
the final argument vector. Env files are read in order, then --set pairs are
applied on top. Without --env-file, the env_files list from the config file
is used.`,
		Example: `  covwrapctl explain --env-file build.env -- rustc --crate-name foo src/lib.rs
  covwrapctl explain --clean-env --set CARGO_LLVM_COV=1 --set CARGO_CRATE_NAME=foo -o json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.v.BindPFlag("scope", cmd.Flags().Lookup("scope")); err != nil {
				return err
			}
			f.scope = o.v.GetString("scope")
			if !cmd.Flags().Changed("env-file") {
				f.envFiles = o.v.GetStringSlice("env_files")
			}
			return runExplain(cmd, o, f, args)
		},
	}

	cmd.Flags().StringArrayVar(&f.envFiles, "env-file", nil, "dotenv file with a captured build environment (repeatable)")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "KEY=VALUE override (repeatable)")
	cmd.Flags().BoolVar(&f.cleanEnv, "clean-env", false, "ignore the current process environment")
	cmd.Flags().StringVar(&f.scope, "scope", "", "override the gate scope: all or primary")
	return cmd
}

func runExplain(cmd *cobra.Command, o *options, f *explainFlags, args []string) error {
	format, err := o.outputFormat()
	if err != nil {
		return err
	}

	env := make(map[string]string)
	if !f.cleanEnv {
		for _, kv := range os.Environ() {
			if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
				env[k] = v
			}
		}
	}
	explicit, err := readExplicit(f)
	if err != nil {
		return err
	}
	maps.Copy(env, explicit)

	ctx := wrapper.ContextFromMap(env)
	r := &wrapper.Runner{Env: ctx, Log: diag.Discard()}
	if f.scope != "" {
		scope, ok := wrapper.ParseScope(f.scope)
		if !ok {
			return fmt.Errorf("unknown scope %q (want all or primary)", f.scope)
		}
		r.Scope = &scope
	}

	report := explainReport{Decision: r.Decide()}
	report.Warnings = misspelt(ctx.Names, explicit)
	if _, ok := ctx.ScopeSetting(); !ok && r.Scope == nil {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%s=%q is not a known scope, covwrap uses all", ctx.Names.Scope, ctx.Scope.Lossy()))
	}
	for _, v := range ctx.Names.Variables() {
		val, _ := ctx.Get(v.Name)
		report.Variables = append(report.Variables, variableReport{Name: v.Name, Set: val.IsSet(), Value: val.Lossy()})
	}

	flags, flagsErr := wrapper.CoverageFlags(ctx)
	report.Flags = flags
	if flagsErr != nil {
		report.FlagsError = flagsErr.Error()
	}

	if len(args) > 0 {
		plan, err := r.Plan(append([]string{"covwrap"}, args...))
		if err != nil && report.FlagsError == "" {
			report.FlagsError = err.Error()
		}
		report.Delegate = plan.Delegate
		report.Argv = plan.Argv
	}

	log := diag.New(cmd.ErrOrStderr())
	for _, w := range report.Warnings {
		log.Warning("%s", w)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return writeJSON(out, report)
	case "yaml":
		return writeYAML(out, report)
	}
	return writeExplainText(out, report)
}

// readExplicit collects env-file entries and --set pairs, later sources
// overriding earlier ones.
func readExplicit(f *explainFlags) (map[string]string, error) {
	explicit := make(map[string]string)
	for _, path := range f.envFiles {
		vars, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("reading env file %s: %w", path, err)
		}
		maps.Copy(explicit, vars)
	}
	for _, kv := range f.sets {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --set %q, want KEY=VALUE", kv)
		}
		explicit[k] = v
	}
	return explicit, nil
}

// misspelt flags explicitly supplied keys that look like contract variables
// but are not.
func misspelt(names wrapper.Names, explicit map[string]string) []string {
	known := make([]string, 0, 10)
	for _, v := range names.Variables() {
		known = append(known, v.Name)
	}
	keys := make([]string, 0, len(explicit))
	for k := range explicit {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var warnings []string
	for _, k := range keys {
		if names.Known(k) {
			continue
		}
		if best := fuzzy.FindBestName(k, known, 2); best != "" {
			warnings = append(warnings, fmt.Sprintf("%s is not read by covwrap, did you mean %s?", k, best))
		}
	}
	return warnings
}

func writeExplainText(w io.Writer, r explainReport) error {
	table := tablewriter.NewWriter(w)
	table.Header("Variable", "Set", "Value")
	for _, v := range r.Variables {
		if err := table.Append(v.Name, yesNo(v.Set), v.Value); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	verdict := "skip"
	if r.Decision.Instrument {
		verdict = "instrument"
	}
	fmt.Fprintf(w, "\ndecision: %s (%s)\n", verdict, r.Decision.Reason)
	fmt.Fprintf(w, "scope:    %s\n", r.Decision.Scope)
	if r.FlagsError != "" {
		fmt.Fprintf(w, "flags:    error: %s\n", r.FlagsError)
	} else {
		fmt.Fprintf(w, "flags:    %s\n", quoteArgs(r.Flags))
	}
	if r.Delegate != "" {
		fmt.Fprintf(w, "command:  %s\n", quoteArgs(append([]string{r.Delegate}, r.Argv...)))
	}
	return nil
}
