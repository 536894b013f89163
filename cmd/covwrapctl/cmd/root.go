package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// options is shared by every subcommand of one command tree.
type options struct {
	cfgFile string
	v       *viper.Viper
}

// NewRootCmd builds the covwrapctl command tree.
func NewRootCmd() *cobra.Command {
	o := &options{v: viper.New()}

	root := &cobra.Command{
		Use:   "covwrapctl",
		Short: "Inspect the covwrap compiler wrapper",
		Long: `covwrapctl evaluates the covwrap instrumentation gate against the current
environment, a captured env file, or explicit KEY=VALUE pairs, and prints the
compiler command line covwrap would run. It never starts a compiler.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.initConfig(cmd)
		},
	}

	root.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (default is $HOME/.covwrapctl.yaml)")
	root.PersistentFlags().StringP("output", "o", "text", "output format: text, json or yaml")

	root.AddCommand(newExplainCmd(o), newVarsCmd(o), newVersionCmd())
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// initConfig reads the config file and COVWRAPCTL_* variables. Flags win
// over environment, environment over file.
func (o *options) initConfig(cmd *cobra.Command) error {
	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			o.v.AddConfigPath(home)
		}
		o.v.SetConfigName(".covwrapctl")
		o.v.SetConfigType("yaml")
	}

	o.v.SetEnvPrefix("COVWRAPCTL")
	o.v.AutomaticEnv()

	if err := o.v.BindPFlag("output", cmd.Root().PersistentFlags().Lookup("output")); err != nil {
		return err
	}

	if err := o.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

// outputFormat returns the validated output format.
func (o *options) outputFormat() (string, error) {
	switch f := o.v.GetString("output"); f {
	case "text", "json", "yaml":
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, json or yaml)", f)
	}
}
