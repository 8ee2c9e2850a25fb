// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonapidoc

// jsonapidoc renders JSON:API documents from declarative resource manifests.
package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/jsonapidoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/jsonapidoc"
	_buildTime string
)

// starterManifest is the example manifest printed by the manifest subcommand.
//
//go:embed manifest.example.yaml
var starterManifest string

// cliOptions describes jsonapidoc CLI flags and subcommands.
type cliOptions struct {
	Verbose bool `short:"v" long:"verbose" description:"Enable debug logging to stderr"`

	Version  versionCommand  `command:"version" description:"Print version information"`
	Render   renderCommand   `command:"render" description:"Render manifest rows into a JSON:API document"`
	Validate validateCommand `command:"validate" description:"Check manifest definition and rows without producing output"`
	Manifest manifestCommand `command:"manifest" description:"Print a starter resource manifest"`
}

// manifestInputFlags groups manifest reading flags.
type manifestInputFlags struct {
	InputFormat string `short:"i" long:"input-format" description:"Manifest input format" choice:"auto" choice:"yaml" choice:"json" choice:"toml" default:"auto"`
}

// documentRenderFlags groups document rendering flags.
type documentRenderFlags struct {
	Attributes   []string `short:"a" long:"attribute" description:"Declared attribute to include (repeatable; all attributes when omitted)"`
	Links        []string `short:"l" long:"link" description:"Registered link name to include (repeatable)"`
	Single       bool     `short:"s" long:"single" description:"Render only the first row as a single-resource document"`
	OutputFormat string   `short:"o" long:"output-format" description:"Document output format" choice:"json" choice:"yaml" default:"json"`
	Compact      bool     `short:"c" long:"compact" description:"Emit compact JSON without trailing newline formatting"`
}

// renderCommand converts a manifest into a JSON:API document.
type renderCommand struct {
	runner *cliRunner

	Args struct {
		Input  string `positional-arg-name:"manifest" description:"Input manifest file path (optional; stdin when omitted)"`
		Output string `positional-arg-name:"output" description:"Output document file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	InputFlags  manifestInputFlags  `group:"Manifest Input"`
	RenderFlags documentRenderFlags `group:"Document Render"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(
		command.Args.Input,
		command.Args.Output,
		command.InputFlags,
		command.RenderFlags,
	)
}

// validateCommand checks a manifest without writing a document.
type validateCommand struct {
	runner *cliRunner

	Args struct {
		Input string `positional-arg-name:"manifest" description:"Input manifest file path (optional; stdin when omitted)"`
	} `positional-args:"yes"`

	InputFlags manifestInputFlags `group:"Manifest Input"`
}

// Execute runs validate subcommand.
func (command *validateCommand) Execute(_ []string) error {
	return command.runner.runValidate(command.Args.Input, command.InputFlags)
}

// manifestCommand exports the starter manifest.
type manifestCommand struct {
	runner *cliRunner

	Args struct {
		Output string `positional-arg-name:"output" description:"Output manifest file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs manifest subcommand.
func (command *manifestCommand) Execute(_ []string) error {
	return command.runner.writeResult([]byte(starterManifest), command.Args.Output, "manifest")
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	_, _ = fmt.Fprintf(command.runner.stdout, "jsonapidoc %s (%s) built %s\n%s\n",
		Version, Commit, BuildTime.Format(time.RFC3339), URL)
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	logger      *log.Logger
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "jsonapidoc"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Render.runner = runner
	options.Validate.runner = runner
	options.Manifest.runner = runner
	options.Version.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		runner.logger = newLogger(runner.stderr, options.Verbose)
		return command.Execute(args)
	}

	_, err := parser.ParseArgs(args)
	return err
}

// newLogger builds the stderr diagnostics logger.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// runRender executes manifest-to-document flow and writes result to stdout or file.
func (runner *cliRunner) runRender(inputPath, outputPath string, input manifestInputFlags, render documentRenderFlags) error {
	def, instances, err := runner.buildManifest(inputPath, input)
	if err != nil {
		return err
	}

	options := jsonapidoc.Options{
		Attributes: attributeSelector(render.Attributes),
		Links:      render.Links,
	}

	runner.logger.Debug("rendering documents",
		"resource", def.ResourceName(), "rows", len(instances), "links", len(render.Links))

	collection, err := buildCollection(instances, options, render.Single)
	if err != nil {
		return fmt.Errorf("render document: %w", err)
	}

	encoded, err := encodeCollection(collection, render)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	return runner.writeResult(encoded, outputPath, "document")
}

// runValidate builds the manifest definition and rows and reports success.
func (runner *cliRunner) runValidate(inputPath string, input manifestInputFlags) error {
	def, instances, err := runner.buildManifest(inputPath, input)
	if err != nil {
		return err
	}

	// A full render catches required-attribute gaps that instance
	// construction deliberately leaves to render time.
	if _, err := jsonapidoc.RenderCollection(instances, jsonapidoc.Options{
		Attributes: jsonapidoc.AllAttributes(),
	}); err != nil {
		return fmt.Errorf("validate manifest: %w", err)
	}

	_, _ = fmt.Fprintf(runner.stdout, "manifest ok: resource %q, %d row(s)\n",
		def.ResourceName(), len(instances))
	return nil
}

// buildManifest reads, decodes and builds the manifest from file or stdin.
func (runner *cliRunner) buildManifest(inputPath string, input manifestInputFlags) (*jsonapidoc.Definition, []*jsonapidoc.Instance, error) {
	format := jsonapidoc.ManifestFormat(input.InputFormat)

	manifest, source, err := runner.readManifest(inputPath, format)
	if err != nil {
		return nil, nil, err
	}

	runner.logger.Debug("manifest decoded", "source", source, "fields", len(manifest.Fields))

	def, instances, err := manifest.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build manifest %s: %w", source, err)
	}

	return def, instances, nil
}

// readManifest loads the manifest from file path or stdin.
func (runner *cliRunner) readManifest(path string, format jsonapidoc.ManifestFormat) (*jsonapidoc.Manifest, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		manifest, err := jsonapidoc.ParseManifestFile(path, format)
		if err != nil {
			return nil, "", fmt.Errorf("read manifest %q: %w", path, err)
		}

		return manifest, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read manifest from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read manifest from stdin: empty input")
	}

	manifest, err := jsonapidoc.ParseManifest(data, format)
	if err != nil {
		return nil, "", fmt.Errorf("decode manifest from stdin: %w", err)
	}

	return manifest, "(stdin)", nil
}

// attributeSelector maps repeated --attribute flags onto a selector.
func attributeSelector(names []string) jsonapidoc.Selector {
	if len(names) == 0 {
		return jsonapidoc.AllAttributes()
	}

	return jsonapidoc.Attributes(names...)
}

// buildCollection renders manifest rows as a collection or single document.
func buildCollection(instances []*jsonapidoc.Instance, options jsonapidoc.Options, single bool) (*jsonapidoc.Collection, error) {
	if single {
		if len(instances) == 0 {
			return nil, errors.New("manifest has no data rows to render")
		}

		return jsonapidoc.RenderOne(instances[0], options)
	}

	return jsonapidoc.RenderCollection(instances, options)
}

// encodeCollection serializes the collection in the selected output format.
func encodeCollection(collection *jsonapidoc.Collection, render documentRenderFlags) ([]byte, error) {
	if render.OutputFormat == "yaml" {
		return collection.EncodeYAML()
	}

	encoded, err := collection.EncodeJSON()
	if err != nil {
		return nil, err
	}

	if !render.Compact {
		encoded = append(encoded, '\n')
	}

	return encoded, nil
}

// writeResult writes output bytes to stdout or file.
func (runner *cliRunner) writeResult(data []byte, outputPath, kind string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(data); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, outputPath, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}
