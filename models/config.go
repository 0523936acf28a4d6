package models

type CatalogConfig struct {
	DBPath     string `mapstructure:"db_path"`
	BatchSize  int    `mapstructure:"batch_size"`  // 0 = default (2000)
	PageSize   int    `mapstructure:"page_size"`   // 0 = default (50)
	AllowEmpty bool   `mapstructure:"allow_empty"` // empty selection creates a zero-file drive
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type AIConfig struct {
	Model string `mapstructure:"model"`
}

type AppConfig struct {
	Server  ServerConfig  `mapstructure:"server"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	AI      AIConfig      `mapstructure:"ai"`
}
