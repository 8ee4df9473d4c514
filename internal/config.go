package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const oldestLayout = time.DateOnly

var validate = validator.New()

type Config struct {
	SlackToken             string `env:"SLACK_TOKEN,required=true" validate:"required"`
	ChannelsFile           string `env:"CHANNELS_FILE,required=true" validate:"required"`
	Oldest                 string `env:"OLDEST,default=2020-01-01" validate:"required,datetime=2006-01-02"`
	HistoryPageLimit       int    `env:"HISTORY_PAGE_LIMIT,default=1000" validate:"min=1,max=1000"`
	FetchConcurrency       int    `env:"FETCH_CONCURRENCY,default=4" validate:"min=1,max=64"`
	SlackRequestsPerMinute int    `env:"SLACK_REQUESTS_PER_MINUTE,default=50" validate:"min=1"`
	SlackMaxRetries        int    `env:"SLACK_MAX_RETRIES,default=3" validate:"min=0,max=10"`
	CSVPath                string `env:"CSV_PATH,default=./result.csv" validate:"required"`
	JSONPath               string `env:"JSON_PATH,default=./visualize.json" validate:"required"`
	Preview                bool   `env:"PREVIEW,default=false"`
	LogLevel               string `env:"LOG_LEVEL,required=true" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, err
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, err
	}
	return config, nil
}

// OldestTime is the start of the report, midnight on the local calendar.
func (c Config) OldestTime() (time.Time, error) {
	return time.ParseInLocation(oldestLayout, c.Oldest, time.Local)
}

// ReadAllowList reads a JSON array of channel names, e.g. ["general","random"].
func ReadAllowList(path string) ([]string, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var names []string
	if err = json.Unmarshal(bytes, &names); err != nil {
		return nil, fmt.Errorf("%s must be a JSON array of channel names: %w", path, err)
	}
	return names, nil
}
