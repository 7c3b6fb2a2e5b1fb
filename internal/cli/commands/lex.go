package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benedikt-weyer/umlit/internal/cli/output"
	"github.com/benedikt-weyer/umlit/pkg/parser"
)

// LexOptions holds options for the lex command.
type LexOptions struct {
	Trivia bool // keep whitespace runs as WHITESPACE tokens
}

// NewLexCommand creates the lex command.
func NewLexCommand() *cobra.Command {
	opts := &LexOptions{}
	cmd := &cobra.Command{
		Use:   "lex [file]",
		Short: "Dump the token stream of a diagram file",
		Long: `Tokenize a diagram file and print the token stream.

With --trivia, whitespace runs are emitted as WHITESPACE tokens so a
highlighting consumer can reconstruct the exact source text.`,
		Example: `  # Tokenize a file
  umlit lex diagram.uml

  # Include whitespace tokens, as JSON
  umlit lex --trivia -o json diagram.uml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLex(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Trivia, "trivia", false, "emit whitespace runs as tokens")

	return cmd
}

func runLex(cmd *cobra.Command, args []string, opts *LexOptions) error {
	c := FromCommand(cmd)

	source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	var tokens []parser.Token
	if opts.Trivia {
		tokens = parser.TokenizeWithTrivia(source)
	} else {
		tokens = parser.Tokenize(source)
	}

	if c.Renderer.Mode() == output.ModeJSON {
		type jsonToken struct {
			Type    string `json:"type"`
			Literal string `json:"literal"`
			Line    int    `json:"line"`
			Column  int    `json:"column"`
		}
		out := make([]jsonToken, 0, len(tokens))
		for _, t := range tokens {
			out = append(out, jsonToken{t.Type.String(), t.Literal, t.Pos.Line, t.Pos.Column})
		}
		return c.Renderer.JSON(out)
	}

	rows := make([][]string, 0, len(tokens))
	for _, t := range tokens {
		rows = append(rows, []string{
			t.Type.String(),
			fmt.Sprintf("%q", t.Literal),
			fmt.Sprintf("%d:%d", t.Pos.Line, t.Pos.Column),
		})
	}
	c.Renderer.Table([]string{"Type", "Literal", "Pos"}, rows)
	return nil
}
