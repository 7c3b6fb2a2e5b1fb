package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/benedikt-weyer/umlit/internal/cli/output"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := FromCommand(cmd)
			if c.Renderer.Mode() == output.ModeJSON {
				return c.Renderer.JSON(map[string]string{
					"version":   version,
					"buildDate": buildDate,
					"gitCommit": gitCommit,
					"goVersion": runtime.Version(),
				})
			}
			c.Renderer.Printf("umlit %s\n", version)
			c.Renderer.Printf("  build date: %s\n", buildDate)
			c.Renderer.Printf("  git commit: %s\n", gitCommit)
			c.Renderer.Printf("  go version: %s\n", runtime.Version())
			return nil
		},
	}
}
