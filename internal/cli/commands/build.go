package commands

import (
	"github.com/spf13/cobra"

	"github.com/benedikt-weyer/umlit/pkg/core"
)

// Envelope is the positioned diagram handed to an external renderer,
// paired with the theme it should be drawn in.
type Envelope struct {
	Theme   string        `json:"theme"`
	Diagram *core.Diagram `json:"diagram"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Parse, flatten and lay out a diagram",
		Long: `Run the full pipeline: parse the file, flatten the AST into the
diagram model with boundary-crossing synthesis, compute positions and
sizes with the layout engine, and print the positioned diagram as a
JSON envelope carrying the configured theme.`,
		Example: `  # Positioned diagram for the renderer
  umlit build diagram.uml

  # Dark theme via flag
  umlit build --theme dark diagram.uml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	c := FromCommand(cmd)

	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	res, d, err := buildPipeline(c, source)
	if err != nil {
		return err
	}

	c.Logger.Debug("diagram built",
		"nodes", len(d.Nodes),
		"ports", len(d.Ports),
		"connectors", len(d.Connectors),
		"diagnostics", len(res.Diagnostics),
	)

	return c.Renderer.JSON(Envelope{Theme: c.Cfg.Theme, Diagram: d})
}
