// Package commands wires the promptpath CLI surface to the resolution
// engine: two positional parameters plus options in, a rendered prompt at
// the resolved destination out.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"promptpath/cmd/promptpath/internal/clierr"
	"promptpath/internal/config"
	"promptpath/internal/logging"
	"promptpath/internal/profile"
	"promptpath/internal/projectroot"
	"promptpath/internal/render"
	"promptpath/internal/resolve"
	"promptpath/internal/types"
	"promptpath/internal/vars"
)

type rootOptions struct {
	fromFile    string
	destination string
	inputLayer  string
	adaptation  string
	profileName string
	verbose     bool

	userVars []vars.UserVar
}

// NewRootCmd constructs the promptpath root command. userVars carries the
// --uv-* options already split out of the raw argument list.
func NewRootCmd(userVars []vars.UserVar) *cobra.Command {
	version := os.Getenv("PROMPTPATH_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	opts := &rootOptions{userVars: userVars}

	cmd := &cobra.Command{
		Use:   "promptpath <directive> <layer>",
		Short: "Resolve prompt template paths and variables for AI-facing output",
		Long: `Promptpath validates a directive/layer parameter pair against the active
configuration profile, resolves the prompt template, schema, input and output
paths, and renders the template with the assembled variable table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return clierr.Newf(2, "expected <directive> <layer>, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&opts.fromFile, "from", "f", "", "input source path")
	cmd.Flags().StringVarP(&opts.destination, "destination", "o", "", "output destination file or directory")
	cmd.Flags().StringVarP(&opts.inputLayer, "input", "i", "", "explicit input-layer override")
	cmd.Flags().StringVarP(&opts.adaptation, "adaptation", "a", "", "prompt filename suffix")
	cmd.Flags().StringVarP(&opts.profileName, "config", "c", "", "configuration profile name")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of promptpath",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "promptpath version %s\n", version)
		},
	})
	cmd.AddCommand(newListCmd())

	return cmd
}

func (o *rootOptions) run(cmd *cobra.Command, rawDirective, rawLayer string) error {
	logger, err := logging.New(o.verbose)
	if err != nil {
		return clierr.Wrap(1, "initializing logger", err)
	}
	defer func() { _ = logger.Sync() }()

	name, err := profile.New(o.profileName)
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
	logger.Debug("workspace located", zap.String("root", root), zap.String("profile", name.String()))

	cfg, err := config.Load(root, name)
	if err != nil {
		return clierr.Wrap(1, "loading configuration", err)
	}

	provider, err := types.NewConfigProvider(cfg)
	if err != nil {
		return clierr.Wrap(1, "loading validation patterns", err)
	}

	params, err := types.CreateBoth(rawDirective, rawLayer, provider)
	if err != nil {
		return clierr.Wrap(1, "validating parameters", err)
	}
	logger.Debug("parameters validated",
		zap.String("directive", params.Directive.String()),
		zap.String("layer", params.Layer.String()),
		zap.Int("hierarchy_level", params.Layer.HierarchyLevel()))

	resolver := resolve.New(cfg, provider)
	pathSet, err := resolver.Resolve(params, resolve.Options{
		FromFile:    o.fromFile,
		Destination: o.destination,
		InputLayer:  o.inputLayer,
		Adaptation:  o.adaptation,
	})
	if err != nil {
		return clierr.Wrap(1, "resolving paths", err)
	}
	logger.Debug("paths resolved",
		zap.String("prompt", pathSet.PromptPath),
		zap.String("schema", pathSet.SchemaPath),
		zap.String("input", pathSet.InputPath),
		zap.String("output", pathSet.OutputPath()))

	stdinText, hasStdin, err := readPipedInput(cmd.InOrStdin())
	if err != nil {
		return clierr.Wrap(1, "reading stdin", err)
	}

	varSet, err := vars.Assemble(pathSet, stdinText, hasStdin, o.userVars)
	if err != nil {
		return clierr.Wrap(1, "assembling variables", err)
	}

	text, err := render.Render(pathSet, varSet.Table())
	if err != nil {
		return clierr.Wrap(1, "rendering prompt", err)
	}

	outPath := pathSet.OutputPath()
	if err := render.WriteOutput(outPath, []byte(text)); err != nil {
		return clierr.Wrap(1, "writing output", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), outPath)
	return nil
}

// readPipedInput reads the command's input stream when it is piped. A
// terminal stdin (character device) is skipped so interactive runs do not
// block waiting for input.
func readPipedInput(in io.Reader) (string, bool, error) {
	if f, ok := in.(*os.File); ok {
		info, err := f.Stat()
		if err != nil || info.Mode()&os.ModeCharDevice != 0 {
			return "", false, nil
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", false, err
	}
	if len(data) == 0 {
		return "", false, nil
	}
	return string(data), true, nil
}
