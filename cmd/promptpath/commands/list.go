package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"promptpath/cmd/promptpath/internal/clierr"
	"promptpath/internal/catalog"
	"promptpath/internal/config"
	"promptpath/internal/markdown"
	"promptpath/internal/profile"
	"promptpath/internal/projectroot"
)

// newListCmd returns the `promptpath list` command, which prints the
// template catalog for the active profile as a Markdown table.
func newListCmd() *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the prompt templates available under the configured base directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := profile.New(profileName)
			if err != nil {
				return clierr.Wrap(1, "invalid --config value", err)
			}

			wd, err := os.Getwd()
			if err != nil {
				return clierr.Wrap(1, "determining working directory", err)
			}
			root, err := projectroot.Find(wd)
			if err != nil {
				return clierr.Wrap(1, "locating workspace root", err)
			}
			cfg, err := config.Load(root, name)
			if err != nil {
				return clierr.Wrap(1, "loading configuration", err)
			}

			entries, err := catalog.Scan(cfg.AppPrompt.BaseDir)
			if err != nil {
				return clierr.Wrap(1, "scanning templates", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprint(out, markdown.Header(1, "Prompt templates"))
			if len(entries) == 0 {
				_, _ = fmt.Fprintf(out, "No templates under %s\n", cfg.AppPrompt.BaseDir)
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				adaptation := e.Adaptation
				if adaptation == "" {
					adaptation = "-"
				}
				rows = append(rows, []string{e.Directive, e.Layer, e.InputLayer, adaptation, e.Path})
			}
			_, _ = fmt.Fprint(out, markdown.Table(
				[]string{"Directive", "Layer", "Input Layer", "Adaptation", "Path"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "config", "c", "", "configuration profile name")
	return cmd
}
