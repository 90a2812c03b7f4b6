package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/blimu-dev/jsontyper/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jsontyper",
		Short:         "Generate typed data structures from JSON Schema definitions",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "Log format (console, json)")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newLanguagesCmd())
	return root
}

func newRunner(cmd *cobra.Command) (*cli.Runner, *cli.Settings, error) {
	if _, err := cli.LoadDotEnv(".env"); err != nil {
		return nil, nil, err
	}
	settings, err := cli.NewSettings(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	log, err := settings.Logger()
	if err != nil {
		return nil, nil, err
	}
	return &cli.Runner{Fs: afero.NewOsFs(), Log: log, Out: cmd.OutOrStdout()}, settings, nil
}

func newGenerateCmd() *cobra.Command {
	var configPath string
	var targets []string
	var fallback cli.FallbackParams

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate type definitions",
		Example: `  jsontyper generate -s schema.json -o types.rs -l rust
  jsontyper generate -c jsontyper.yaml --target golang`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, settings, err := newRunner(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = runner.Log.Sync() }()

			fallback.Strict = settings.Bool("strict")
			return runner.RunGenerate(context.Background(), cli.RunGenerateParams{
				ConfigPath: configPath,
				Targets:    targets,
				Fallback:   fallback,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to jsontyper.yaml config")
	cmd.Flags().StringArrayVar(&targets, "target", nil, "Generate only the configured targets of this language")
	cmd.Flags().StringVarP(&fallback.Spec, "spec", "s", "", "Schema file (json/yaml) holding definitions")
	cmd.Flags().StringVarP(&fallback.Output, "output", "o", "", "Output file")
	cmd.Flags().StringVarP(&fallback.Language, "lang", "l", "", "Target language (golang, rust, python, typescript)")
	cmd.Flags().StringVar(&fallback.Template, "template", "", "Custom template file")
	cmd.Flags().StringVar(&fallback.Package, "package", "", "Package name for languages that have one")
	cmd.Flags().Bool("strict", false, "Fail when a property type cannot be resolved")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var spec string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a schema file",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := newRunner(cmd)
			if err != nil {
				return err
			}
			return runner.RunValidate(spec)
		},
	}
	cmd.Flags().StringVarP(&spec, "spec", "s", "", "Schema file (json/yaml)")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, _, err := newRunner(cmd)
			if err != nil {
				return err
			}
			runner.RunLanguages()
			return nil
		},
	}
}
