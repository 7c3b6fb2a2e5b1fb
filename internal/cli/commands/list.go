package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benedikt-weyer/umlit/internal/cli/output"
	"github.com/benedikt-weyer/umlit/pkg/core"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [file]",
		Short: "List the nodes and connectors of a diagram",
		Long: `Run the full pipeline and print the positioned nodes and the
connectors (including synthesized boundary-crossing ones) as tables.`,
		Example: `  umlit list diagram.uml
  umlit list -o markdown diagram.uml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	c := FromCommand(cmd)

	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	_, d, err := buildPipeline(c, source)
	if err != nil {
		return err
	}

	if c.Renderer.Mode() == output.ModeJSON {
		return c.Renderer.JSON(d)
	}

	nodeRows := make([][]string, 0, len(d.Nodes))
	for _, n := range d.Nodes {
		nodeRows = append(nodeRows, []string{
			n.ID,
			n.Label,
			fmt.Sprintf("%d", n.Depth),
			n.ParentID,
			fmt.Sprintf("%.0f,%.0f", n.X, n.Y),
			fmt.Sprintf("%.0fx%.0f", n.W, n.H),
		})
	}
	c.Renderer.Table([]string{"ID", "Label", "Depth", "Parent", "Position", "Size"}, nodeRows)

	if len(d.Connectors) == 0 {
		return nil
	}

	connRows := make([][]string, 0, len(d.Connectors))
	for _, conn := range d.Connectors {
		connRows = append(connRows, []string{
			endpoint(conn.Source, conn.SourcePort),
			endpoint(conn.Target, conn.TargetPort),
			conn.Kind.String(),
			conn.EdgeType,
			conn.Label,
			flags(conn),
		})
	}
	c.Renderer.Table([]string{"From", "To", "Kind", "Notation", "Label", "Flags"}, connRows)
	return nil
}

func endpoint(node, port string) string {
	if port != "" {
		return node + "." + port
	}
	return node
}

func flags(c *core.Connector) string {
	switch {
	case c.AutoGenerated && c.CrossLevel:
		return "auto,cross"
	case c.CrossLevel:
		return "cross"
	default:
		return ""
	}
}
