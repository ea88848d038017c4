// SPDX-FileCopyrightText: 2024-2025 Rafael V. Volkmer <rafael.v.volkmer@gmail.com>
// SPDX-License-Identifier: MIT

// Command sumcheck classifies the sum of two numbers against a threshold.
//
// It exposes three subcommands:
//
//   - classify: classify a single pair given as arguments or flags
//   - batch:    classify one pair per line read from a file or stdin
//   - rules:    list the classification rules
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	outputadapter "github.com/rafaelvolkmer/sumcheck/internal/adapter/output"
	"github.com/rafaelvolkmer/sumcheck/internal/domain/model"
	"github.com/rafaelvolkmer/sumcheck/internal/domain/ports"
	"github.com/rafaelvolkmer/sumcheck/internal/infrastructure"
	"github.com/rafaelvolkmer/sumcheck/internal/usecase"
)

const (
	// envPrefix defines the prefix used for environment variables that
	// configure the CLI. For example:
	//
	//   SUMCHECK_FORMAT=json
	//   SUMCHECK_Y=25
	envPrefix = "SUMCHECK"
)

// App wires configuration, shared dependencies and command handlers for the CLI.
type App struct {
	config *viper.Viper
	deps   *Dependencies
	stdout io.Writer

	newLogger func(verbose bool) (*zap.Logger, error)
}

// Dependencies groups the shared services used by the CLI commands.
type Dependencies struct {
	Source    *infrastructure.LineSource
	Renderers func(color bool) ports.RendererRegistry
}

// NewApp constructs a new App reading batch input from stdin and writing
// results to stdout.
//
// Environment variables are configured with the SUMCHECK_ prefix and
// hyphens in flag names are transparently mapped to underscores.
func NewApp(stdin io.Reader, stdout io.Writer) *App {
	config := viper.New()
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()

	return &App{
		config: config,
		deps: &Dependencies{
			Source:    infrastructure.NewLineSource(stdin),
			Renderers: newRendererRegistry,
		},
		stdout:    stdout,
		newLogger: newLogger,
	}
}

// main is the entry point for the sumcheck CLI. All process exit codes are
// decided here.
func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	application := NewApp(os.Stdin, os.Stdout)
	if err := application.Run(context.Background(), os.Args[1:]); err != nil {
		if !errors.Is(err, errUnknownCommand) {
			log.Printf("error: %v", err)
		}
		os.Exit(1)
	}
}

var errUnknownCommand = errors.New("unknown command")

// Run dispatches to the subcommand named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage()
		return errUnknownCommand
	}

	command := args[0]
	commandArgs := args[1:]

	var err error

	switch command {
	case "classify":
		err = a.runClassify(ctx, commandArgs)
	case "batch":
		err = a.runBatch(ctx, commandArgs)
	case "rules":
		err = a.runRules(ctx, commandArgs)
	case "-h", "--help", "help":
		printUsage()
		return nil
	default:
		log.Printf("unknown command %q\n", command)
		printUsage()
		return errUnknownCommand
	}

	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	return err
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `sumcheck - classify the sum of two numbers against 100

Usage:
  sumcheck classify [options] x [y]
  sumcheck batch    [options] [file|-]
  sumcheck rules

Commands:
  classify  Classify one pair (y defaults to 10)
  batch     Classify one pair per input line
  rules     List the classification rules

Run "sumcheck <command> -h" for command-specific flags.
`)
}

// runClassify handles the "classify" subcommand.
//
// Configuration precedence (highest first):
//  1. Positional arguments
//  2. Command-line flags
//  3. Environment variables SUMCHECK_*
//  4. Config file given by --config
//  5. Built-in defaults
func (a *App) runClassify(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("classify", pflag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.String("x", "", "First operand (can also be given as first positional argument)")
	flagSet.String("y", "", "Second operand, defaults to 10 when omitted")
	addCommonFlags(flagSet)

	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
  sumcheck classify [options] x [y]

Use "--" before negative operands: sumcheck classify -- -5 20

Options:
`)
		flagSet.PrintDefaults()
	}

	if err := a.parseFlags(flagSet, args); err != nil {
		return err
	}

	rawX, hasX := a.config.GetString("x"), a.config.IsSet("x")
	rawY, hasY := a.config.GetString("y"), a.config.IsSet("y")

	positional := flagSet.Args()
	if len(positional) > 2 {
		return fmt.Errorf("%w: expected at most two operands, got %d", model.ErrInvalidArgument, len(positional))
	}
	if len(positional) > 0 {
		rawX, hasX = positional[0], true
	}
	if len(positional) > 1 {
		rawY, hasY = positional[1], true
	}

	if !hasX || strings.TrimSpace(rawX) == "" {
		return fmt.Errorf("%w: x is required", model.ErrInvalidArgument)
	}

	req := usecase.ClassifyRequest{}
	x, err := infrastructure.ParseOperand("x", rawX)
	if err != nil {
		return err
	}
	req.X = x

	if hasY && strings.TrimSpace(rawY) != "" {
		y, err := infrastructure.ParseOperand("y", rawY)
		if err != nil {
			return err
		}
		req.Y = &y
	}

	logger, err := a.newLogger(a.config.GetBool("verbose"))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	renderer, err := a.renderer()
	if err != nil {
		return err
	}

	eval, err := usecase.NewClassifyUseCase(logger).Execute(ctx, req)
	if err != nil {
		return err
	}

	rendered, err := renderer.Render(eval)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, rendered)
	return nil
}

// runBatch handles the "batch" subcommand. The input defaults to stdin.
func (a *App) runBatch(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("batch", pflag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.String("input", infrastructure.StdinName, `Input file, "-" reads stdin (can also be given as positional argument)`)
	addCommonFlags(flagSet)

	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
  sumcheck batch [options] [file|-]

Each non-empty line holds "x" or "x y"; lines starting with # are skipped.

Options:
`)
		flagSet.PrintDefaults()
	}

	if err := a.parseFlags(flagSet, args); err != nil {
		return err
	}

	input := a.config.GetString("input")
	if remaining := flagSet.Args(); len(remaining) > 0 {
		input = remaining[0]
	}

	logger, err := a.newLogger(a.config.GetBool("verbose"))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	renderer, err := a.renderer()
	if err != nil {
		return err
	}

	batchUseCase := usecase.NewBatchClassifyUseCase(a.deps.Source, logger)
	evals, err := batchUseCase.Execute(ctx, usecase.BatchClassifyRequest{Input: input})
	if err != nil {
		return err
	}

	rendered, err := renderer.RenderBatch(evals)
	if err != nil {
		return err
	}

	if rendered != "" {
		fmt.Fprintln(a.stdout, rendered)
	}
	return nil
}

// runRules handles the "rules" subcommand.
func (a *App) runRules(ctx context.Context, args []string) error {
	flagSet := pflag.NewFlagSet("rules", pflag.ContinueOnError)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage:
  sumcheck rules

Lists the classification rules.
`)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	rules := usecase.NewListRulesUseCase().Execute(ctx)

	fmt.Fprintln(a.stdout, "Classification rules:")
	for _, rule := range rules {
		fmt.Fprintf(a.stdout, "- [%s] %s (%s)\n    %s\n",
			rule.Kind, rule.Condition, rule.ID, rule.Description)
	}
	return nil
}

func addCommonFlags(flagSet *pflag.FlagSet) {
	flagSet.String("format", "text", "Output format (text|json|yaml)")
	flagSet.Bool("no-color", false, "Disable ANSI colors in text output")
	flagSet.BoolP("verbose", "v", false, "Log intermediate values to stderr")
	flagSet.String("config", "", "Optional YAML config file")
}

// parseFlags parses args, binds the flag set into the shared Viper instance
// and loads the config file when one is configured.
func (a *App) parseFlags(flagSet *pflag.FlagSet, args []string) error {
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if err := a.config.BindPFlags(flagSet); err != nil {
		return fmt.Errorf("bind flags to viper: %w", err)
	}

	if path := a.config.GetString("config"); path != "" {
		a.config.SetConfigFile(path)
		a.config.SetConfigType("yaml")
		if err := a.config.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return nil
}

func (a *App) renderer() (ports.OutputRenderer, error) {
	registry := a.deps.Renderers(!a.config.GetBool("no-color"))

	format := a.config.GetString("format")
	renderer, found := registry.Get(format)
	if !found {
		return nil, fmt.Errorf("unknown format %q (want %s)", format, registry.Formats())
	}
	return renderer, nil
}

// newLogger builds the production zap logger; verbose lowers the level to
// debug so the classification diagnostics reach stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func newRendererRegistry(color bool) ports.RendererRegistry {
	return outputadapter.NewRendererRegistry(
		outputadapter.NewTextRenderer(color),
		outputadapter.NewJSONRenderer(),
		outputadapter.NewYAMLRenderer(),
	)
}
