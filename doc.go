// FILE: lixenwraith/settings/doc.go

// Package settings aggregates application options from defaults, a project
// manifest, configuration files, environment variables and the command line
// into one nested mapping, with optional type coercion and help text parsing.
//
// Features:
//   - Layered loading with fixed precedence, later sources win
//   - Command-line tokenizer with short clusters, --key=value and repeats
//   - Key normalization: snake/kebab to camelCase, noFlag negation, dotted nesting
//   - Param descriptors with alias, type and default
//   - Params extracted from a usage block, with --help and --version handling
//   - JSON, TOML and YAML files, found upward from the project root or in XDG dirs
//   - Struct decoding with mapstructure
//   - Per-project shared instances through Registry
//
// Quick Start:
//
//	s := settings.NewWithOptions(nil, settings.Options{Name: "myapp", InferTypes: true})
//	err := s.Help(`
//	  Usage: myapp [OPTIONS] FILE
//	    -p, --port NUMBER     Listen port
//	    -v, --verbose         Verbose output
//	`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	port, _ := s.Int64("port")
//	files := s.Get("_", nil)
//
// Precedence (highest to lowest):
//  1. Command-line arguments (--port 9090, -p 9090)
//  2. Environment variables (MYAPP_PORT=9090)
//  3. myapp.config.json, myapp.config.toml, myapp.config.yaml
//  4. The "myapp" section of package.json
//  5. Param defaults
//
// Thread Safety:
// All methods are safe for concurrent use.
package settings
