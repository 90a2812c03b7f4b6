package generator

import (
	"context"

	"github.com/spf13/afero"

	"github.com/blimu-dev/jsontyper/pkg/config"
	"github.com/blimu-dev/jsontyper/pkg/schema"
)

// GenerateTypes is a convenience function for a single run on the OS filesystem
func GenerateTypes(ctx context.Context, opts Options) (*Result, error) {
	return NewService().Generate(ctx, opts)
}

// GenerateFromConfig is a convenience function for generating from a config file.
// Languages restrict the run to the matching targets.
func GenerateFromConfig(ctx context.Context, configPath string, languages ...string) ([]*Result, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return NewService().GenerateFromConfig(ctx, cfg, languages...)
}

// ValidateSpec checks a schema document against the supported subset
func ValidateSpec(specPath string) error {
	return schema.ValidateFile(afero.NewOsFs(), specPath)
}
