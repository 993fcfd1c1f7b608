package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config tells the store where records live on disk.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the database path from a .planbook config file or
// the PLANBOOK_PATH environment variable, defaulting to ~/.planbook.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.planbook.db")
	viper.SetConfigName(".planbook") // .yaml is implicit
	viper.SetEnvPrefix("PLANBOOK")
	viper.AutomaticEnv()

	if override := os.Getenv("PLANBOOK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
