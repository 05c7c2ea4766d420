// Package conf handles loading and validation of the aika-go configuration.
package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/aikalabs/aika-go/internal/errors"
)

// Settings holds the full application configuration.
type Settings struct {
	Debug bool `yaml:"debug" mapstructure:"debug"`

	// Offline skips every network data source and prints the
	// astronomy and calendar sections only.
	Offline bool `yaml:"offline" mapstructure:"offline"`

	Main struct {
		Name string `yaml:"name" mapstructure:"name"`
		Log  struct {
			Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
			Path    string `yaml:"path" mapstructure:"path"`
		} `yaml:"log" mapstructure:"log"`
	} `yaml:"main" mapstructure:"main"`

	Location struct {
		Latitude  float64 `yaml:"latitude" mapstructure:"latitude"`
		Longitude float64 `yaml:"longitude" mapstructure:"longitude"`
		Timezone  string  `yaml:"timezone" mapstructure:"timezone"`
		City      string  `yaml:"city" mapstructure:"city"`
		Country   string  `yaml:"country" mapstructure:"country"`
	} `yaml:"location" mapstructure:"location"`

	Language string `yaml:"language" mapstructure:"language"`

	Weather struct {
		Provider string `yaml:"provider" mapstructure:"provider"`
	} `yaml:"weather" mapstructure:"weather"`

	Finland struct {
		Electricity       bool   `yaml:"electricity" mapstructure:"electricity"`
		Aurora            bool   `yaml:"aurora" mapstructure:"aurora"`
		RoadWeather       bool   `yaml:"roadweather" mapstructure:"roadweather"`
		Transit           bool   `yaml:"transit" mapstructure:"transit"`
		DigitransitAPIKey string `yaml:"digitransitapikey" mapstructure:"digitransitapikey"`
	} `yaml:"finland" mapstructure:"finland"`

	Cache struct {
		Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
		Dir     string `yaml:"dir" mapstructure:"dir"`
	} `yaml:"cache" mapstructure:"cache"`
}

// settingsInstance is the current settings instance
var (
	settingsInstance *Settings
	once             sync.Once
	settingsMutex    sync.RWMutex
)

// Load reads the configuration file and environment variables into Settings.
func Load() (*Settings, error) {
	settingsMutex.Lock()
	defer settingsMutex.Unlock()

	settings := &Settings{}

	if err := initViper(); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	settingsInstance = settings
	return settingsInstance, nil
}

// initViper initializes viper with default values and reads the configuration file.
func initViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("AIKA")
	viper.AutomaticEnv()

	configPaths, err := GetDefaultConfigPaths()
	if err != nil {
		return fmt.Errorf("error getting default config paths: %w", err)
	}

	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	// Set default values for each configuration parameter
	// function defined in defaults.go
	setDefaultConfig()

	err = viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create config with defaults
			return createDefaultConfig(configPaths[0])
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// createDefaultConfig writes a config file populated with defaults and re-reads it.
func createDefaultConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	settings := &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		return fmt.Errorf("error unmarshaling defaults: %w", err)
	}

	yamlData, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("error marshaling default config to YAML: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, yamlData, 0o644); err != nil {
		return fmt.Errorf("error writing default config file: %w", err)
	}

	return viper.ReadInConfig()
}

// GetSettings returns the current settings instance
func GetSettings() *Settings {
	settingsMutex.RLock()
	defer settingsMutex.RUnlock()
	return settingsInstance
}

// Setting returns the current settings instance, initializing it if necessary
func Setting() *Settings {
	once.Do(func() {
		if settingsInstance == nil {
			if _, err := Load(); err != nil {
				panic(fmt.Sprintf("error loading settings: %v", err))
			}
		}
	})
	return GetSettings()
}

// GetDefaultConfigPaths returns a list of default configuration paths for the
// current operating system, following the conventions used by the config loader.
func GetDefaultConfigPaths() ([]string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategorySystem).
			Context("operation", "get-home-directory").
			Build()
	}

	var configPaths []string
	switch runtime.GOOS {
	case "windows":
		configPaths = []string{
			filepath.Join(homeDir, "AppData", "Roaming", "aika-go"),
			".",
		}
	default:
		configPaths = []string{
			filepath.Join(homeDir, ".config", "aika-go"),
			".",
		}
	}

	return configPaths, nil
}
