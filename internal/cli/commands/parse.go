package commands

import (
	"github.com/spf13/cobra"

	"github.com/benedikt-weyer/umlit/pkg/diagram"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	Flat bool // print the flattened diagram instead of the AST
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a diagram file and print its AST",
		Long: `Parse a diagram file into an AST and print it as JSON.

With --flat, the AST is additionally flattened through the diagram
builder (including boundary-crossing connector synthesis) and the flat
node/port/connector lists are printed instead. Structural warnings go
to stderr; a syntax error aborts with no partial output.`,
		Example: `  # Print the AST
  umlit parse diagram.uml

  # Print the flattened diagram model
  umlit parse --flat diagram.uml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Flat, "flat", false, "print the flattened diagram model")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	c := FromCommand(cmd)

	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	res, err := parseSource(c, source)
	if err != nil {
		return err
	}

	if opts.Flat {
		return c.Renderer.JSON(diagram.Build(res.AST))
	}
	return c.Renderer.JSON(res.AST)
}
