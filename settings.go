// FILE: lixenwraith/settings/settings.go
package settings

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sync"
)

// Console receives help and version output. Exit ends the program.
type Console interface {
	Print(text string)
	Exit(code int)
}

type stdConsole struct {
	w io.Writer
}

func (c stdConsole) Print(text string) { fmt.Fprintln(c.w, text) }

func (stdConsole) Exit(code int) { os.Exit(code) }

// Options configures a Settings instance. Start from DefaultOptions: the zero
// value leaves Manifest to be defaulted but also disables InferTypes.
type Options struct {
	// Name is the application name; it prefixes env vars and config files
	Name string
	// Version is printed when the command line sets --version
	Version string
	// ProjectPath is where file lookups start; found from Manifest when empty
	ProjectPath string
	// Manifest marks the project root and holds a per-application section
	Manifest string
	// InferTypes converts env and command-line strings to bools and numbers.
	// DefaultOptions enables it; the zero value does not.
	InferTypes bool

	Params map[string]Param

	// Args defaults to os.Args[1:] when nil
	Args []string
	// Environ defaults to the process environment when nil
	Environ func() map[string]string

	Console Console
	Logger  *slog.Logger
}

// DefaultOptions returns the standard options
func DefaultOptions() Options {
	return Options{
		Manifest:   DefaultManifest,
		InferTypes: true,
	}
}

// Settings holds the resolved option values of an application.
//
// Values come from, in increasing precedence: registered defaults, the
// manifest section, <name>.config.{json,toml,yaml}, environment variables and
// the command line. The first read loads all of them once.
type Settings struct {
	mu          sync.Mutex
	data        map[string]any
	opts        Options
	params      map[string]Param
	initialized bool
	helpText    string
	logger      *slog.Logger
	console     Console
}

// New creates settings seeded with data and default options.
func New(data map[string]any) *Settings {
	return NewWithOptions(data, DefaultOptions())
}

// NewWithOptions creates settings seeded with data.
func NewWithOptions(data map[string]any, opts Options) *Settings {
	if opts.Manifest == "" {
		opts.Manifest = DefaultManifest
	}
	if opts.ProjectPath == "" {
		if root, ok := FindProjectRoot("", opts.Manifest); ok {
			opts.ProjectPath = root
		}
	}

	s := &Settings{
		data:    map[string]any{PositionalKey: []any{}},
		params:  make(map[string]Param, len(opts.Params)),
		logger:  opts.Logger,
		console: opts.Console,
	}
	for k, v := range data {
		s.data[k] = v
	}
	for name, p := range opts.Params {
		s.params[name] = p
	}
	opts.Params = nil
	s.opts = opts

	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	if s.console == nil {
		s.console = stdConsole{w: os.Stdout}
	}
	return s
}

// Get returns the value at a dotted path, or def when absent.
// A failed first load is logged and the values loaded so far are used.
func (s *Settings) Get(path string, def any) any {
	if err := s.ensureInit(); err != nil {
		s.logger.Warn("reading settings after failed load", "path", path, "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return GetNode(s.data, path, def)
}

// Value returns the value at a dotted path and whether it is present.
func (s *Settings) Value(path string) (any, bool) {
	v := s.Get(path, nil)
	return v, v != nil
}

// Set stores value at a dotted path.
func (s *Settings) Set(path string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = SetNode(s.data, path, value)
}

// Data returns a deep copy of the resolved mapping. It does not trigger loading.
func (s *Settings) Data() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return DeepCopy(s.data).(map[string]any)
}

// Paths returns the dotted paths of all leaf values, sorted.
func (s *Settings) Paths() []string {
	s.ensureInit()

	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedKeys(flattenMap(s.data, ""))
}

// Load resolves params in partial and merges the result.
func (s *Settings) Load(partial map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(partial)
}

// LoadCmd loads a tokenized command line; nil means the configured arguments.
// If it sets version and a version is configured, the version is printed
// and the program exits.
func (s *Settings) LoadCmd(args []string) error {
	s.mu.Lock()
	showVersion, err := s.loadCmdLocked(args)
	s.mu.Unlock()

	if showVersion {
		s.show("version", s.Version())
	}
	return err
}

// LoadCmdString splits line on whitespace and loads it as a command line.
func (s *Settings) LoadCmdString(line string) error {
	return s.LoadCmd(SplitCommandLine(line))
}

// LoadEnv loads environment variables whose names start with prefix
// (case-insensitive), with the prefix and one separator removed. An empty
// prefix loads the whole environment.
func (s *Settings) LoadEnv(prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values := stringMapToAny(s.environ())
	if prefix != "" {
		values = FilterByKeyPrefix(values, prefix)
	}
	return s.loadEnvLocked(values, "prefix", prefix)
}

// LoadEnvKeys loads only the named environment variables.
func (s *Settings) LoadEnvKeys(keys ...string) error {
	if keys == nil {
		keys = []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	values := FilterByKeys(stringMapToAny(s.environ()), keys)
	return s.loadEnvLocked(values, "keys", keys)
}

// LoadFile finds name upward from the project path, falling back to the
// XDG config directories of the application, and loads the given section
// of it (the whole file when section is empty). Missing or unreadable files
// load nothing.
func (s *Settings) LoadFile(name, section string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadFileLocked(name, section)
}

// LoadDefaults loads every standard source for prefix, the application name
// when empty. Without a prefix only the command line is loaded.
func (s *Settings) LoadDefaults(prefix string) error {
	s.mu.Lock()
	showVersion, err := s.loadDefaultsLocked(prefix)
	s.mu.Unlock()

	if showVersion {
		s.show("version", s.Version())
	}
	return err
}

// Help registers the options documented in a usage block and prints the
// block when the command line sets --help.
func (s *Settings) Help(text string) error {
	return s.HelpWithOptions(text, DefaultHelpOptions())
}

// HelpWithOptions is Help with explicit rendering options.
func (s *Settings) HelpWithOptions(text string, opts HelpOptions) error {
	result := ParseHelp(text, opts)

	s.mu.Lock()
	s.helpText = result.Text
	s.registerHelpParams(result.Params)
	s.mu.Unlock()

	if err := s.ensureInit(); err != nil {
		return err
	}

	s.mu.Lock()
	requested := s.data["help"] == true
	s.mu.Unlock()

	if opts.AutoShow && requested {
		s.show("help", result.Text)
	}
	return nil
}

// HelpText returns the rendered usage block, empty if Help was never called.
func (s *Settings) HelpText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.helpText
}

// Name returns the application name.
func (s *Settings) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Name
}

// Version returns the application version.
func (s *Settings) Version() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.Version
}

// ProjectPath returns the directory file lookups start from.
func (s *Settings) ProjectPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.ProjectPath
}

// Configure changes options after creation. Params in the passed Options
// are ignored; register them with Param.
func (s *Settings) Configure(fn func(o *Options)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.opts)
	s.opts.Params = nil
	if s.opts.Manifest == "" {
		s.opts.Manifest = DefaultManifest
	}
	if s.opts.Logger != nil {
		s.logger = s.opts.Logger
	}
	if s.opts.Console != nil {
		s.console = s.opts.Console
	}
}

// Reset drops all values and marks the settings loaded, so the standard
// sources are not read afterwards.
func (s *Settings) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = map[string]any{PositionalKey: []any{}}
	s.initialized = true
}

// ensureInit loads the standard sources on first use.
func (s *Settings) ensureInit() error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}

	s.logger.Debug("loading default sources", "name", s.opts.Name)
	showVersion, err := s.loadDefaultsLocked("")
	s.initialized = true
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("failed to load default sources", "name", s.Name(), "error", err)
	}
	if showVersion {
		s.show("version", s.Version())
	}
	return err
}

// show prints text and exits successfully.
func (s *Settings) show(what, text string) {
	s.logger.Debug("printing and exiting", "output", what)
	s.console.Print(text)
	s.console.Exit(0)
}

func (s *Settings) loadLocked(partial map[string]any) error {
	// Defaults only fill paths that no load has set.
	params := make(map[string]Param, len(s.params))
	for name, p := range s.params {
		p.Default = nil
		params[name] = p
	}

	resolved, err := ProcessParams(DeepCopy(partial).(map[string]any), params)
	if err != nil {
		return err
	}
	s.data = DeepMerge(s.data, resolved)

	for _, name := range sortedKeys(s.params) {
		p := s.params[name]
		if p.Default != nil && GetNode(s.data, name, nil) == nil {
			s.data = SetNode(s.data, name, DeepCopy(p.Default))
		}
	}
	return nil
}

func (s *Settings) loadCmdLocked(args []string) (bool, error) {
	if args == nil {
		args = s.opts.Args
	}
	if args == nil && len(os.Args) > 1 {
		args = os.Args[1:]
	}

	parsed := ParseArgs(args, s.booleanFlags())
	cmd := Transform(parsed.Map(), TransformOptions{
		KeyToCamelCase:  true,
		KeyNegating:     true,
		KeyNested:       true,
		ValuePrimitives: s.opts.InferTypes,
	})

	s.logger.Debug("loading command line", "args", len(args), "positional", len(parsed.Positional))
	if err := s.loadLocked(cmd); err != nil {
		return false, fmt.Errorf("failed to load command line: %w", err)
	}
	return s.data["version"] == true && s.opts.Version != "", nil
}

func (s *Settings) loadEnvLocked(values map[string]any, filter string, by any) error {
	delete(values, PositionalKey)

	env := Transform(values, TransformOptions{
		KeyToLowerCase:  true,
		KeyToCamelCase:  true,
		KeyNegating:     true,
		KeyNested:       true,
		ValuePrimitives: s.opts.InferTypes,
	})

	s.logger.Debug("loading environment", filter, by, "vars", len(values))
	if err := s.loadLocked(env); err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}
	return nil
}

func (s *Settings) loadFileLocked(name, section string) error {
	path, ok := findConfigFile(name, s.opts.ProjectPath, s.opts.Name)
	if !ok {
		s.logger.Debug("config file not found", "file", name)
		return nil
	}

	content, err := readConfigFile(path)
	if err != nil {
		s.logger.Warn("ignoring unreadable config file", "path", path, "error", err)
		return nil
	}

	if section != "" {
		sub, _ := GetNode(content, section, nil).(map[string]any)
		content = sub
	}

	s.logger.Debug("loading config file", "path", path, "section", section, "keys", len(content))
	if err := s.loadLocked(content); err != nil {
		return fmt.Errorf("failed to load config file '%s': %w", path, err)
	}
	return nil
}

func (s *Settings) loadDefaultsLocked(prefix string) (bool, error) {
	if prefix == "" {
		prefix = s.opts.Name
	}
	if prefix == "" {
		return s.loadCmdLocked(nil)
	}

	files := []struct{ name, section string }{
		{s.opts.Manifest, prefix},
		{prefix + ".config.json", ""},
		{prefix + ".config.toml", ""},
		{prefix + ".config.yaml", ""},
	}
	for _, f := range files {
		if err := s.loadFileLocked(f.name, f.section); err != nil {
			return false, err
		}
	}

	values := FilterByKeyPrefix(stringMapToAny(s.environ()), envPrefix(prefix))
	if err := s.loadEnvLocked(values, "prefix", envPrefix(prefix)); err != nil {
		return false, err
	}

	return s.loadCmdLocked(nil)
}

func (s *Settings) environ() map[string]string {
	if s.opts.Environ != nil {
		return s.opts.Environ()
	}
	return Environ()
}
