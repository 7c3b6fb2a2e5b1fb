package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/benedikt-weyer/umlit/internal/cli/output"
	"github.com/benedikt-weyer/umlit/internal/config"
	"github.com/benedikt-weyer/umlit/pkg/core"
	"github.com/benedikt-weyer/umlit/pkg/diagram"
	"github.com/benedikt-weyer/umlit/pkg/layout"
	"github.com/benedikt-weyer/umlit/pkg/parser"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// ctxKey is used to store the CommandContext in a command's context.
type ctxKey struct{}

// WithContext stores the CommandContext in a context.
func WithContext(ctx context.Context, c *CommandContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromCommand retrieves the CommandContext, falling back to defaults
// when the root command did not run (tests calling RunE directly).
func FromCommand(cmd *cobra.Command) *CommandContext {
	if c, ok := cmd.Context().Value(ctxKey{}).(*CommandContext); ok {
		return c
	}
	return &CommandContext{
		Cfg:      config.Default(),
		Logger:   slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil)),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeText),
	}
}

// readSource reads the DSL source from the path argument, or stdin
// when the path is empty or "-".
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

// parseSource runs one parse attempt and reports structural warnings.
// On a syntax error no partial AST is returned; the previous diagram,
// if any, is for the caller to discard.
func parseSource(c *CommandContext, source string) (*parser.Result, error) {
	res, err := parser.ParseWithType(source, core.DiagramType(c.Cfg.DiagramType))
	if err != nil {
		return nil, err
	}
	if len(res.Diagnostics) > 0 {
		c.Renderer.Diagnostics(res.Diagnostics)
	}
	return res, nil
}

// buildPipeline runs the full text -> AST -> diagram -> layout
// pipeline.
func buildPipeline(c *CommandContext, source string) (*parser.Result, *core.Diagram, error) {
	res, err := parseSource(c, source)
	if err != nil {
		return nil, nil, err
	}
	d := diagram.Build(res.AST)
	layout.New(c.Cfg.Layout).Layout(d, res.AST)
	return res, d, nil
}
