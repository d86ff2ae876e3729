package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the settings the store needs to open its backing storage.
type Config interface {
	BasePath() string
}

// LoadConfig reads the .daygrid config file from the working directory,
// falling back to defaults and DAYGRID_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.daygrid.db")
	viper.SetConfigName(".daygrid") // .yaml is implicit
	viper.SetEnvPrefix("DAYGRID")
	viper.AutomaticEnv()

	if override := os.Getenv("DAYGRID_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
