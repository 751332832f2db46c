// FILE: lixenwraith/settings/builder.go
package settings

import (
	"errors"
	"fmt"
	"log/slog"
)

// ValidatorFunc checks fully loaded settings and returns an error if they
// are unusable.
type ValidatorFunc func(s *Settings) error

// Builder provides a fluent interface for building settings
type Builder struct {
	data       map[string]any
	opts       Options
	booleans   []string
	help       string
	helpOpts   HelpOptions
	hasHelp    bool
	errs       []error
	validators []ValidatorFunc
}

// NewBuilder creates a new settings builder
func NewBuilder() *Builder {
	opts := DefaultOptions()
	opts.Params = make(map[string]Param)
	return &Builder{
		data:     make(map[string]any),
		opts:     opts,
		helpOpts: DefaultHelpOptions(),
	}
}

// WithData seeds values that every source may override
func (b *Builder) WithData(data map[string]any) *Builder {
	DeepMerge(b.data, data)
	return b
}

// WithName sets the application name
func (b *Builder) WithName(name string) *Builder {
	b.opts.Name = name
	return b
}

// WithVersion sets the version printed for --version
func (b *Builder) WithVersion(version string) *Builder {
	b.opts.Version = version
	return b
}

// WithProjectPath sets where file lookups start
func (b *Builder) WithProjectPath(path string) *Builder {
	b.opts.ProjectPath = path
	return b
}

// WithManifest sets the project manifest file name
func (b *Builder) WithManifest(name string) *Builder {
	b.opts.Manifest = name
	return b
}

// WithInferTypes toggles bool and number inference for env and command line
func (b *Builder) WithInferTypes(infer bool) *Builder {
	b.opts.InferTypes = infer
	return b
}

// WithArgs sets the command-line arguments
func (b *Builder) WithArgs(args []string) *Builder {
	b.opts.Args = args
	return b
}

// WithEnviron sets the environment source
func (b *Builder) WithEnviron(fn func() map[string]string) *Builder {
	b.opts.Environ = fn
	return b
}

// WithParam registers a param descriptor
func (b *Builder) WithParam(name string, p Param) *Builder {
	if !p.Type.valid() {
		b.errs = append(b.errs, fmt.Errorf("%w %q of param %q", ErrUnknownParamType, p.Type, name))
		return b
	}
	b.opts.Params[name] = b.opts.Params[name].merge(p)
	return b
}

// WithBoolean marks params as booleans
func (b *Builder) WithBoolean(names ...string) *Builder {
	b.booleans = append(b.booleans, names...)
	return b
}

// WithHelp sets the usage block parsed at build time
func (b *Builder) WithHelp(text string, opts HelpOptions) *Builder {
	b.help = text
	b.helpOpts = opts
	b.hasHelp = true
	return b
}

// WithConsole sets where help and version output goes
func (b *Builder) WithConsole(c Console) *Builder {
	b.opts.Console = c
	return b
}

// WithLogger sets the logger
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.opts.Logger = logger
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build creates the settings, parses the help block if any and loads the
// standard sources
func (b *Builder) Build() (*Settings, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	s := NewWithOptions(b.data, b.opts)
	if err := s.Boolean(b.booleans...); err != nil {
		return nil, err
	}

	var err error
	if b.hasHelp {
		err = s.HelpWithOptions(b.help, b.helpOpts)
	} else {
		err = s.ensureInit()
	}
	if err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(s); err != nil {
			return nil, fmt.Errorf("settings validation failed: %w", err)
		}
	}

	return s, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Settings {
	s, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("settings build failed: %v", err))
	}
	return s
}

// BuildAndScan builds and decodes the subtree at path into target
func (b *Builder) BuildAndScan(path string, target any) error {
	s, err := b.Build()
	if err != nil {
		return err
	}
	if err := s.Scan(path, target); err != nil {
		return fmt.Errorf("failed to scan settings into target: %w", err)
	}
	return nil
}
