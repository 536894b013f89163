package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dzonerzy/go-covwrap/wrapper"
)

func newVarsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "vars",
		Short: "List the environment variables covwrap reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := o.outputFormat()
			if err != nil {
				return err
			}
			vars := wrapper.DefaultNames().Variables()
			w := cmd.OutOrStdout()
			switch format {
			case "json":
				return writeJSON(w, vars)
			case "yaml":
				return writeYAML(w, vars)
			}

			table := tablewriter.NewWriter(w)
			table.Header("Variable", "Role")
			for _, v := range vars {
				if err := table.Append(v.Name, v.Role); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}
