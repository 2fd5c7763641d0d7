package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCommand(r *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or save the effective configuration",
	}

	var format string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "yaml":
				fmt.Fprint(cmd.OutOrStdout(), r.cfg.GetYAML())
			case "json":
				fmt.Fprintln(cmd.OutOrStdout(), r.cfg.GetJSON())
			default:
				return fmt.Errorf("unknown format %q, use yaml or json", format)
			}
			return nil
		},
	}
	show.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml or json)")

	save := &cobra.Command{
		Use:   "save [path]",
		Short: "Write the effective configuration, environment overrides included",
		Long: `Write the effective configuration as YAML.

Without a path the file given by --config is rewritten, which fills in
every default and pins values taken from the environment.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := r.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if err := r.cfg.Save(path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.AddCommand(show, save)
	return cmd
}
