package app

import (
	"github.com/isaac-pipcode/Cat-logo-de-HDs/models"

	"github.com/spf13/viper"
)

func LoadConfig(path string) (*models.AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("catalog.db_path", "data/catalogo.db")
	v.SetDefault("catalog.batch_size", DefaultBatchSize)
	v.SetDefault("catalog.page_size", DefaultPageSize)
	v.SetDefault("catalog.allow_empty", true)
	v.SetDefault("server.port", 8080)
	v.SetDefault("ai.model", "gemini-2.5-flash")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg models.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
