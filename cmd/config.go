package cmd

import (
	"fmt"

	"github.com/spf13/viper"
)

// ToolConfig holds configuration for the CLI
type ToolConfig struct {
	Separator    string `mapstructure:"separator"`
	MaxScriptOps int    `mapstructure:"max_script_ops"`
	ShowStats    bool   `mapstructure:"show_stats"`
}

// LoadToolConfig loads CLI configuration using Viper
func LoadToolConfig() (*ToolConfig, error) {
	viper.SetConfigName("forwardlist-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.forwardlist")
	viper.AddConfigPath("/etc/forwardlist")

	// Set defaults
	viper.SetDefault("separator", " ")
	viper.SetDefault("max_script_ops", 10000)
	viper.SetDefault("show_stats", false)

	// Allow environment variables
	viper.SetEnvPrefix("FORWARDLIST")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	var config ToolConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
