package commands

import (
	"fmt"

	"confluencer/internal/config"
	"confluencer/pkg/confluence"
	"confluencer/pkg/logger"
)

// newAPIClient is a package-level variable to allow test injection of a mock.
// Production code uses the real client constructor; tests can override this.
var newAPIClient = func(baseURL, user, token string, log *logger.Logger) confluence.API {
	return confluence.NewClient(baseURL, user, token, log)
}

// setup loads the config and builds the API client shared by all commands.
func setup() (confluence.API, *config.Config, *logger.Logger, error) {
	log := logger.New(verbose)

	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	client := newAPIClient(cfg.Confluence.BaseURL, cfg.Confluence.Username, cfg.Confluence.APIToken, log)
	return client, cfg, log, nil
}

// resolveSpaceKey picks the space for an operation: the --space flag wins,
// then config space_key, then config space_name resolved through the API.
func resolveSpaceKey(client confluence.API, cfg *config.Config, spaceFlag string) (string, error) {
	if spaceFlag != "" {
		return spaceFlag, nil
	}
	if cfg.Confluence.SpaceKey != "" {
		return cfg.Confluence.SpaceKey, nil
	}
	if cfg.Confluence.SpaceName != "" {
		return client.ResolveSpaceKey(cfg.Confluence.SpaceName)
	}
	return "", fmt.Errorf("no space given: use --space or set confluence.space_key / confluence.space_name in %s", configFile)
}
