package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/blimu-dev/jsontyper/pkg/config"
	"github.com/blimu-dev/jsontyper/pkg/generator"
	"github.com/blimu-dev/jsontyper/pkg/schema"
)

// FallbackParams describe a single target given on the command line
type FallbackParams struct {
	Spec     string
	Output   string
	Language string
	Template string
	Package  string
	Strict   bool
}

// RunGenerateParams selects a config run or, without ConfigPath, a single flag-driven run
type RunGenerateParams struct {
	ConfigPath string
	// Targets restricts a config run to these languages
	Targets  []string
	Fallback FallbackParams
}

// Runner executes CLI commands against a filesystem
type Runner struct {
	Fs  afero.Fs
	Log *zap.Logger
	Out io.Writer
}

func (r *Runner) service() *generator.Service {
	return generator.NewService(generator.WithFs(r.Fs), generator.WithLogger(r.Log))
}

// RunGenerate generates from the config file, or from the fallback flags when no config is given
func (r *Runner) RunGenerate(ctx context.Context, p RunGenerateParams) error {
	if p.ConfigPath == "" {
		f := p.Fallback
		if f.Spec == "" || f.Output == "" || f.Language == "" {
			return errors.New("either --config or all of --spec, --output, --lang must be provided")
		}
		res, err := r.service().Generate(ctx, generator.Options{
			Spec:     f.Spec,
			Output:   absPath(f.Output),
			Language: f.Language,
			Template: f.Template,
			Package:  f.Package,
			Strict:   f.Strict,
		})
		if err != nil {
			return err
		}
		r.report(res)
		return nil
	}

	cfg, err := config.LoadFs(r.Fs, p.ConfigPath)
	if err != nil {
		return err
	}
	if p.Fallback.Strict {
		for i := range cfg.Targets {
			cfg.Targets[i].Strict = true
		}
	}

	results, err := r.service().GenerateFromConfig(ctx, cfg, p.Targets...)
	for _, res := range results {
		r.report(res)
	}
	return err
}

// RunValidate checks a schema document and reports success on Out
func (r *Runner) RunValidate(spec string) error {
	if err := schema.ValidateFile(r.Fs, spec); err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "%s is valid\n", spec)
	return nil
}

// RunLanguages lists the registered languages with their file extensions
func (r *Runner) RunLanguages() {
	reg := generator.DefaultRegistry()
	for _, name := range reg.Languages() {
		b, _ := reg.Get(name)
		fmt.Fprintf(r.Out, "%s\t%s\n", name, b.FileExtension())
	}
}

func (r *Runner) report(res *generator.Result) {
	fmt.Fprintf(r.Out, "wrote %s (%d structs, %d warnings)\n", res.Output, len(res.Structs), len(res.Warnings))
}

// utility
func absPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	abs, _ := filepath.Abs(p)
	return abs
}
