package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/leapstack-labs/leapcss/internal/runner"
	"github.com/leapstack-labs/leapcss/pkg/parser"
	"github.com/leapstack-labs/leapcss/pkg/tree"
)

// NewTreeCommand creates the tree command.
func NewTreeCommand() *cobra.Command {
	var lang string
	var trivia bool

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the syntax tree of a stylesheet",
		Long: `Parse a stylesheet and print its syntax tree.

Every node shows its kind. Tokens show their type, text and position.
Use --trivia to also show the whitespace and comments before each token.`,
		Example: `  # Print the tree of a file
  leapcss tree styles/main.css

  # Include whitespace and comments
  leapcss tree --trivia theme.less`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd, "")
			sheet, _, err := parseSource(cmdCtx, args[0], lang)
			if err != nil {
				return err
			}
			cmdCtx.Renderer.Print(syntaxTree(sheet, trivia))
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "language", "auto", "Parse the file as this language: auto, css, less")
	cmd.Flags().BoolVar(&trivia, "trivia", false, "Show whitespace and comments")

	return cmd
}

// parseSource reads and parses one file. The language is detected from
// the suffix unless lang names one.
func parseSource(cmdCtx *CommandContext, path, lang string) (*tree.StyleSheet, string, error) {
	dopts, err := discoverOptions(cmdCtx.Cfg, lang)
	if err != nil {
		return nil, "", err
	}
	targets, err := runner.Discover([]string{path}, dopts)
	if err != nil {
		return nil, "", err
	}
	if len(targets) == 0 {
		return nil, "", fmt.Errorf("%s: file is skipped as minified", path)
	}
	decoder, err := runner.NewDecoder(cmdCtx.Cfg.Encoding)
	if err != nil {
		return nil, "", err
	}
	src, _, err := decoder.ReadSource(path)
	if err != nil {
		return nil, "", err
	}
	sheet, err := parser.ParseWithLanguage(src, targets[0].Language)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return sheet, src, nil
}

// syntaxTree renders n and its descendants.
func syntaxTree(n tree.Node, trivia bool) string {
	p := treeprint.New()
	addNode(p, n, trivia)
	return p.String()
}

func addNode(p treeprint.Tree, n tree.Node, trivia bool) {
	if t, ok := n.(*tree.SyntaxToken); ok {
		label := fmt.Sprintf("%s %s", t.Token, t.Span.Start)
		if !trivia || len(t.Trivia) == 0 {
			p.AddNode(label)
			return
		}
		branch := p.AddBranch(label)
		for _, tr := range t.Trivia {
			branch.AddNode(fmt.Sprintf("%s %q %s", tr.Kind, tr.Text, tr.Span.Start))
		}
		return
	}
	branch := p.AddBranch(n.Kind().String())
	for _, c := range n.Children() {
		addNode(branch, c, trivia)
	}
}
