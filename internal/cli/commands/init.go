package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/leapcss/internal/cli/config"
	"github.com/leapstack-labs/leapcss/internal/cli/output"
)

const configHeader = `# leapcss configuration
#
# Every key can also be set with a LEAPCSS_ environment variable,
# e.g. LEAPCSS_CPD__MINIMUM_TOKENS=100 for cpd.minimum_tokens.
`

const exampleStylesheet = `/* Example stylesheet checked by leapcss lint */
@font-face {
  font-family: "Example";
  src: url("example.woff2") format("woff2"), url("example.woff") format("woff");
}

.page-header {
  font-family: "Example", sans-serif;
  color: #333;
}
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var example bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a leapcss.yaml configuration file",
		Long: `Write a leapcss.yaml configuration file holding the default settings.

Use --example to also create a small stylesheet that passes every rule.`,
		Example: `  # Initialize in current directory
  leapcss init

  # Initialize in a new directory with an example stylesheet
  leapcss init my-project --example

  # Force overwrite existing config
  leapcss init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg := getConfig()
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))
			return runInit(r, dir, force, example)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&example, "example", false, "Also create an example stylesheet")

	return cmd
}

func runInit(r *output.Renderer, dir string, force, example bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, config.ConfigFileNames[0])
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.ConfigFileNames[0])
	}

	data, err := defaultConfigYAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	created := []string{config.ConfigFileNames[0]}

	if example {
		stylePath := filepath.Join(dir, "styles", "main.css")
		if _, err := os.Stat(stylePath); err != nil || force {
			if err := os.MkdirAll(filepath.Dir(stylePath), 0750); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
			if err := os.WriteFile(stylePath, []byte(exampleStylesheet), 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", stylePath, err)
			}
			created = append(created, filepath.ToSlash(filepath.Join("styles", "main.css")))
		}
	}

	for _, f := range created {
		r.StatusLine(f, "success", "")
	}

	r.Println("")
	r.Success("leapcss project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Adjust rule settings under lint: in leapcss.yaml")
	r.Println("  2. Run 'leapcss lint' to check your stylesheets")
	r.Println("  3. Run 'leapcss rules' to see all rules")

	return nil
}

// defaultConfigYAML renders the default configuration as a commented
// YAML document.
func defaultConfigYAML() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.Default()); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
