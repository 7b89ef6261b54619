package commands

import (
	"github.com/spf13/cobra"

	"github.com/gencomp/gencomp-cli/internal/cli"
	"github.com/gencomp/gencomp-cli/pkg/models"
)

type frameworkInfo struct {
	ID      models.Framework `json:"id" yaml:"id"`
	Name    string           `json:"name" yaml:"name"`
	Default bool             `json:"default" yaml:"default"`
}

// NewFrameworksCommand creates the frameworks command
func NewFrameworksCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "frameworks",
		Short: "List the supported framework identifiers",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			def := models.DefaultFramework
			if settings, err := requireSettings(); err == nil {
				def = settings.Generation.Framework
			}

			var list []frameworkInfo
			for _, fw := range models.Frameworks() {
				list = append(list, frameworkInfo{ID: fw, Name: fw.Label(), Default: fw == def})
			}

			if output != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), output, list)
			}

			table := cli.NewTableFormatter(cmd.OutOrStdout())
			table.Header("ID", "NAME", "DEFAULT")
			for _, fw := range list {
				mark := ""
				if fw.Default {
					mark = "*"
				}
				table.Row(string(fw.ID), fw.Name, mark)
			}
			table.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")

	return cmd
}
