package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/contre95/mediastore/src/media"
	"github.com/spf13/cobra"
)

func newImportCommand(r *session) *cobra.Command {
	return &cobra.Command{
		Use:   "import <source> <category>",
		Short: "Copy a file into a category",
		Long: `Copy a file into a category of the media library.

An existing file with the same name is overwritten. Prints the stored
path relative to the media root, e.g. Image/banner.png.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rel, err := r.service().ImportFile(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rel)
			return nil
		},
	}
}

func newPathCommand(r *session) *cobra.Command {
	return &cobra.Command{
		Use:   "path <category> <filename>",
		Short: "Print the absolute path of a managed file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := r.service().ResolveFilePath(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newBaseCommand(r *session) *cobra.Command {
	return &cobra.Command{
		Use:   "base",
		Short: "Print the media root, creating it if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := r.service().ResolveBasePath(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newListCommand(r *session) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list <category>",
		Short: "List the files of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := r.service().ListFiles(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(names)
			}
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the names as a JSON array")
	return cmd
}

func newDeleteCommand(r *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category> <filename>",
		Short: "Remove a managed file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.service().DeleteFile(cmd.Context(), args[0], args[1])
		},
	}
}

func newExtensionsCommand(r *session) *cobra.Command {
	return &cobra.Command{
		Use:   "extensions [category]",
		Short: "Print the file picker extensions per category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				c, err := media.ParseCategory(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, strings.Join(c.Extensions(), " "))
				return nil
			}
			exts := r.service().Extensions()
			for _, c := range media.Categories {
				fmt.Fprintf(out, "%s: %s\n", c, strings.Join(exts[c], " "))
			}
			return nil
		},
	}
}
