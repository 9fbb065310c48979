package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"confluencer/internal/config"
)

var (
	configureSets           []string
	configureYes            bool
	configurePrint          bool
	configureNonInteractive bool
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Create or edit the configuration file interactively or via flags",
	Long: `Interactively create or edit the configuration file (config.yaml by
default).

Features:
- Interactive prompts for the Confluence connection settings
- Apply key=value overrides via --set (base_url, username, api_token, space_key, space_name)
- Non-interactive scripting with --non-interactive --yes --set ...
- Print resulting YAML with --print instead of writing
`,
	Example: `  confluencer configure
  confluencer configure --non-interactive --yes --set base_url=https://example.atlassian.net/wiki --set username=me --set api_token=secret`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
	configureCmd.Flags().StringArrayVar(&configureSets, "set", nil, "Set a config field (e.g. base_url=https://example.atlassian.net/wiki)")
	configureCmd.Flags().BoolVar(&configureYes, "yes", false, "Automatically confirm saving changes")
	configureCmd.Flags().BoolVar(&configurePrint, "print", false, "Print resulting YAML instead of writing to file")
	configureCmd.Flags().BoolVar(&configureNonInteractive, "non-interactive", false, "Disable interactive prompts (use with --set)")
}

func runConfigure(cmd *cobra.Command, args []string) error {
	cfg, err := loadOrInitConfig(configFile)
	if err != nil {
		return err
	}

	// Apply flag mutations first (non-interactive layer)
	if err := applySetOperations(cfg, configureSets); err != nil {
		return err
	}

	if !configureNonInteractive {
		if err := interactiveEdit(cfg); err != nil {
			return err
		}
	}

	outYAML, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}

	if configurePrint {
		cmd.Print(string(outYAML))
		return nil
	}

	if !configureYes && !configureNonInteractive {
		confirm := false
		prompt := &survey.Confirm{Message: "Save configuration to " + configFile + "?", Default: true}
		if err := survey.AskOne(prompt, &confirm); err != nil {
			return err
		}
		if !confirm {
			cmd.Println("Aborted (no changes saved).")
			return nil
		}
	}

	if err := writeConfigFile(configFile, outYAML); err != nil {
		return err
	}
	cmd.Printf("Configuration saved to %s\n", configFile)
	return nil
}

func loadOrInitConfig(path string) (*config.Config, error) {
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return config.Load(path)
	}
	return &config.Config{}, nil
}

func applySetOperations(cfg *config.Config, sets []string) error {
	for _, set := range sets {
		key, value, found := strings.Cut(set, "=")
		if !found {
			return fmt.Errorf("invalid --set %q (expected key=value)", set)
		}
		switch key {
		case "base_url":
			cfg.Confluence.BaseURL = value
		case "username":
			cfg.Confluence.Username = value
		case "api_token":
			cfg.Confluence.APIToken = value
		case "space_key":
			cfg.Confluence.SpaceKey = value
		case "space_name":
			cfg.Confluence.SpaceName = value
		default:
			return fmt.Errorf("unknown config field %q", key)
		}
	}
	return nil
}

func interactiveEdit(cfg *config.Config) error {
	qs := []*survey.Question{
		{Name: "base_url", Prompt: &survey.Input{Message: "Confluence Base URL", Default: cfg.Confluence.BaseURL}},
		{Name: "username", Prompt: &survey.Input{Message: "Confluence Username", Default: cfg.Confluence.Username}},
		{Name: "api_token", Prompt: &survey.Password{Message: "Confluence API Token (leave blank to keep)"}},
		{Name: "space_key", Prompt: &survey.Input{Message: "Default Space Key (optional)", Default: cfg.Confluence.SpaceKey}},
		{Name: "space_name", Prompt: &survey.Input{Message: "Default Space Name (optional, resolved to a key per call)", Default: cfg.Confluence.SpaceName}},
	}
	answers := struct {
		BaseURL   string `survey:"base_url"`
		Username  string `survey:"username"`
		APIToken  string `survey:"api_token"`
		SpaceKey  string `survey:"space_key"`
		SpaceName string `survey:"space_name"`
	}{}
	if err := survey.Ask(qs, &answers); err != nil {
		return err
	}

	cfg.Confluence.BaseURL = answers.BaseURL
	cfg.Confluence.Username = answers.Username
	if answers.APIToken != "" {
		cfg.Confluence.APIToken = answers.APIToken
	}
	cfg.Confluence.SpaceKey = answers.SpaceKey
	cfg.Confluence.SpaceName = answers.SpaceName
	return nil
}

func writeConfigFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
