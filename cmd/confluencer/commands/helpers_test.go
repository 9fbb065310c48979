package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"confluencer/pkg/confluence"
	"confluencer/pkg/logger"
)

// setupTest wires a MockAPI into the command factory and points the config
// flag at a throwaway config file. The original factory and flag values are
// restored when the test ends.
func setupTest(t *testing.T) *confluence.MockAPI {
	t.Helper()

	mock := confluence.NewMockAPI()

	origFactory := newAPIClient
	origConfig := configFile
	newAPIClient = func(baseURL, user, token string, log *logger.Logger) confluence.API {
		return mock
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "confluence:\n" +
		"  base_url: https://test.atlassian.net/wiki\n" +
		"  username: test@example.com\n" +
		"  api_token: test-token\n" +
		"  space_key: DS\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	configFile = path

	t.Cleanup(func() {
		newAPIClient = origFactory
		configFile = origConfig
	})

	return mock
}

// runCommand executes the root command with args and returns its combined
// output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
