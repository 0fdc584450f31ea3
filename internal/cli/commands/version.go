package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapcss/pkg/catalog"
	"github.com/leapstack-labs/leapcss/pkg/core"
	"github.com/leapstack-labs/leapcss/pkg/lint"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display the leapcss version, the supported languages and the size of
the built-in vocabulary and rule set.`,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			if short {
				_, _ = fmt.Fprintln(out, version)
				return
			}
			_, _ = fmt.Fprintf(out, "leapcss v%s\n", version)
			writeBuildInfo(out)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}

func writeBuildInfo(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Languages:")
	for _, name := range core.ListLanguages() {
		l, _ := core.GetLanguage(name)
		suffixes := make([]string, len(l.Suffixes))
		for i, s := range l.Suffixes {
			suffixes[i] = "." + s
		}
		_, _ = fmt.Fprintf(w, "  %-6s %s\n", l.Name, strings.Join(suffixes, ", "))
	}
	_, _ = fmt.Fprintf(w, "Vocabulary: %d at-rules, %d properties, %d functions\n",
		len(catalog.Names(catalog.AtRules)),
		len(catalog.Names(catalog.Properties)),
		len(catalog.Names(catalog.Functions)))
	_, _ = fmt.Fprintf(w, "Rules: %d\n", lint.Count())
}
