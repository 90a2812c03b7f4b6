package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/blimu-dev/jsontyper/internal/logger"
	"github.com/blimu-dev/jsontyper/pkg/config"
	"github.com/blimu-dev/jsontyper/pkg/generator/golang"
	"github.com/blimu-dev/jsontyper/pkg/generator/python"
	"github.com/blimu-dev/jsontyper/pkg/generator/rust"
	"github.com/blimu-dev/jsontyper/pkg/generator/typescript"
	"github.com/blimu-dev/jsontyper/pkg/ir"
	"github.com/blimu-dev/jsontyper/pkg/schema"
	"github.com/blimu-dev/jsontyper/pkg/target"
)

var (
	// ErrUnsupportedLanguage is returned when no backend is registered for a language
	ErrUnsupportedLanguage = errors.New("language not supported")
	// ErrUnresolvedTypes is returned in strict mode when a property type cannot be resolved
	ErrUnresolvedTypes = errors.New("unresolved property types")
)

// Registry manages available backends
type Registry struct {
	backends map[string]target.Backend
	aliases  map[string]string
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]target.Backend),
		aliases:  make(map[string]string),
	}
}

// DefaultRegistry returns a registry holding every built-in backend
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(golang.NewBackend())
	r.Register(rust.NewBackend())
	r.Register(python.NewBackend())
	r.Register(typescript.NewBackend())
	return r
}

// Register adds a backend under its name and aliases
func (r *Registry) Register(b target.Backend) {
	r.backends[b.Name()] = b
	for _, alias := range b.Aliases() {
		r.aliases[alias] = b.Name()
	}
}

// Get retrieves a backend by name or alias
func (r *Registry) Get(language string) (target.Backend, bool) {
	b, ok := r.backends[r.Canonical(language)]
	return b, ok
}

// Canonical returns the backend name for a language or alias. Unknown
// languages come back trimmed and lowercased.
func (r *Registry) Canonical(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if name, ok := r.aliases[language]; ok {
		return name
	}
	return language
}

// Languages returns the registered language names, sorted
func (r *Registry) Languages() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options describes one generation run
type Options struct {
	// Spec is the schema document path
	Spec string
	// Output is the generated file path
	Output string
	// Language selects the backend
	Language string
	// Template optionally replaces the backend's default template
	Template string
	// Package names the generated package where the target has one
	Package string
	// Strict fails the run on unresolvable property types instead of emitting empty types
	Strict bool
	// PreCommand runs in the output directory before the file is written
	PreCommand []string
	// PostCommand runs in the output directory after the file is written,
	// in Docker Compose array format: ["rustfmt", "types.rs"]
	PostCommand []string
}

// Result summarises a generation run
type Result struct {
	Output    string
	Source    []byte
	Structs   []ir.Struct
	Externals []string
	Warnings  []string
}

// Service runs the normalize, resolve, render pipeline
type Service struct {
	registry *Registry
	fs       afero.Fs
	log      *zap.Logger
	now      func() time.Time
}

// Option configures a Service
type Option func(*Service)

// WithRegistry replaces the default backend registry
func WithRegistry(r *Registry) Option {
	return func(s *Service) { s.registry = r }
}

// WithFs sets the filesystem used to read specs and templates and to write output
func WithFs(fs afero.Fs) Option {
	return func(s *Service) { s.fs = fs }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = logger.OrNop(l) }
}

// WithClock sets the source of the generation timestamp
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a service with the default backends on the OS filesystem
func NewService(opts ...Option) *Service {
	s := &Service{
		registry: DefaultRegistry(),
		fs:       afero.NewOsFs(),
		log:      zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetRegistry returns the backend registry
func (s *Service) GetRegistry() *Registry {
	return s.registry
}

// Generate loads the schema document, renders it for the selected language and writes the output file.
// Nothing is written when the run fails.
func (s *Service) Generate(ctx context.Context, opts Options) (*Result, error) {
	if opts.Output == "" {
		return nil, errors.New("output path is required")
	}

	doc, err := schema.LoadDocument(s.fs, opts.Spec)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, doc, opts)
}

// GenerateFromConfig generates every configured target, or only those whose
// language is listed in only. The spec is loaded once for all targets.
func (s *Service) GenerateFromConfig(ctx context.Context, cfg *config.Config, only ...string) ([]*Result, error) {
	targets := cfg.SelectBy(s.registry.Canonical, only...)
	if len(targets) == 0 {
		return nil, fmt.Errorf("no target matches %s", strings.Join(only, ", "))
	}

	doc, err := schema.LoadDocument(s.fs, cfg.Spec)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, 0, len(targets))
	for _, t := range targets {
		res, err := s.generate(ctx, doc, OptionsFromTarget(cfg.Spec, t))
		if err != nil {
			return results, fmt.Errorf("target %s (%s): %w", t.Language, t.Output, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// OptionsFromTarget converts a configured target into run options
func OptionsFromTarget(spec string, t config.Target) Options {
	return Options{
		Spec:        spec,
		Output:      t.Output,
		Language:    t.Language,
		Template:    t.Template,
		Package:     t.Package,
		Strict:      t.Strict,
		PreCommand:  t.GetPreCommand(),
		PostCommand: t.GetPostCommand(),
	}
}

func (s *Service) generate(ctx context.Context, doc *schema.Document, opts Options) (*Result, error) {
	res, err := s.Build(ctx, doc, opts)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(opts.Output)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	if err := s.executeCommand(opts.PreCommand, dir, "pre-command"); err != nil {
		return nil, err
	}
	if err := afero.WriteFile(s.fs, opts.Output, res.Source, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", opts.Output, err)
	}
	res.Output = opts.Output

	if err := s.executeCommand(opts.PostCommand, dir, "post-command"); err != nil {
		return nil, err
	}

	s.log.Info("generated types",
		zap.String("language", opts.Language),
		zap.String("output", opts.Output),
		zap.Int("structs", len(res.Structs)),
		zap.Int("externals", len(res.Externals)),
		zap.Int("warnings", len(res.Warnings)),
	)
	return res, nil
}

// Build runs the pipeline over an already loaded document and returns the
// rendered source without touching the output path
func (s *Service) Build(ctx context.Context, doc *schema.Document, opts Options) (*Result, error) {
	backend, ok := s.registry.Get(opts.Language)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnsupportedLanguage, opts.Language, strings.Join(s.registry.Languages(), ", "))
	}

	tplName, tplText, err := s.template(backend, opts.Template)
	if err != nil {
		return nil, err
	}

	log := s.log.With(zap.String("language", backend.Name()))
	session := target.NewSession(log)

	log.Debug("normalizing definitions", zap.Int("definitions", len(doc.Definitions)))
	structs := Normalize(doc, session)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resolver := newMemoResolver(backend.NewResolver(session), session)
	resolver.resolveAll(structs)
	if opts.Strict && session.Unresolved() > 0 {
		return nil, fmt.Errorf("%w: %d properties", ErrUnresolvedTypes, session.Unresolved())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := Data{
		Date:      s.now(),
		Language:  backend.Name(),
		Package:   packageName(opts),
		Externals: session.Externals.List(),
		Structs:   structs,
		Enums:     ir.AllEnums(structs),
	}

	log.Debug("rendering", zap.String("template", tplName), zap.Int("structs", len(structs)))
	src, err := Render(tplName, tplText, resolver, data)
	if err != nil {
		return nil, err
	}

	if f, ok := backend.(target.Formatter); ok {
		formatted, err := f.Format(src)
		if err != nil {
			session.Warn("Could not format generated source: "+err.Error(), zap.Error(err))
		} else {
			src = formatted
		}
	}

	return &Result{
		Source:    src,
		Structs:   structs,
		Externals: data.Externals,
		Warnings:  session.Warnings(),
	}, nil
}

// template returns the custom template when one is configured, else the backend default
func (s *Service) template(b target.Backend, path string) (string, []byte, error) {
	if path == "" {
		name, text := b.Template()
		return name, text, nil
	}
	text, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return filepath.Base(path), text, nil
}

// executeCommand runs a command given in Docker Compose array format
func (s *Service) executeCommand(command []string, workDir, label string) error {
	if len(command) == 0 {
		return nil
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Dir = workDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	s.log.Debug("running "+label, zap.Strings("command", command), zap.String("dir", workDir))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s (%s) failed: %w", label, strings.Join(command, " "), err)
	}
	return nil
}

// packageName uses the configured package, else the output directory name
func packageName(opts Options) string {
	if opts.Package != "" {
		return sanitizePackageName(opts.Package)
	}
	if opts.Output == "" {
		return sanitizePackageName("")
	}
	abs, err := filepath.Abs(opts.Output)
	if err != nil {
		abs = opts.Output
	}
	return sanitizePackageName(filepath.Base(filepath.Dir(abs)))
}

var invalidPackageChars = regexp.MustCompile(`[^a-z0-9_]`)

// sanitizePackageName ensures the package name is a valid identifier
func sanitizePackageName(name string) string {
	// keep the last element of a module path
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	name = strings.ToLower(name)
	name = invalidPackageChars.ReplaceAllString(name, "")

	if len(name) > 0 && name[0] >= '0' && name[0] <= '9' {
		name = "pkg" + name
	}
	if name == "" {
		name = "types"
	}
	return name
}
