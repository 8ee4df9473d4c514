package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("SLACK_TOKEN", "xoxb-test")
	t.Setenv("CHANNELS_FILE", "channels.json")
	t.Setenv("LOG_LEVEL", "INFO")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("2020-01-01", config.Oldest)
	req.Equal(1000, config.HistoryPageLimit)
	req.Equal(4, config.FetchConcurrency)
	req.Equal(50, config.SlackRequestsPerMinute)
	req.Equal("./result.csv", config.CSVPath)
	req.Equal("./visualize.json", config.JSONPath)
	req.False(config.Preview)

	oldest, err := config.OldestTime()
	req.NoError(err)
	req.Equal(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.Local), oldest)
}

func TestLoadConfig_MissingToken(t *testing.T) {
	t.Setenv("SLACK_TOKEN", "")
	t.Setenv("CHANNELS_FILE", "channels.json")
	t.Setenv("LOG_LEVEL", "INFO")

	_, err := LoadConfig()

	require.Error(t, err)
}

func TestLoadConfig_InvalidOldest(t *testing.T) {
	t.Setenv("SLACK_TOKEN", "xoxb-test")
	t.Setenv("CHANNELS_FILE", "channels.json")
	t.Setenv("LOG_LEVEL", "INFO")
	t.Setenv("OLDEST", "01/01/2020")

	_, err := LoadConfig()

	require.Error(t, err)
}

func TestReadAllowList(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "channels.json")
	req.NoError(os.WriteFile(path, []byte(`["general","random"]`), 0o644))

	names, err := ReadAllowList(path)

	req.NoError(err)
	req.Equal([]string{"general", "random"}, names)
}

func TestReadAllowList_NotAnArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channels.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"general":true}`), 0o644))

	_, err := ReadAllowList(path)

	require.Error(t, err)
}
