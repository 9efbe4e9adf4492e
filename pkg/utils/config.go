package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type StoreConfig struct {
	URI              string
	Name             string
	UsersCollection  string
	OrdersCollection string
	TimeoutSeconds   int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "lupang-store")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DB_NAME", "lupang")
	viper.SetDefault("USERS_COLLECTION", "users")
	viper.SetDefault("ORDERS_COLLECTION", "orders")
	viper.SetDefault("STORE_TIMEOUT_SECONDS", 10)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Store: StoreConfig{
			URI:              viper.GetString("MONGO_URI"),
			Name:             viper.GetString("DB_NAME"),
			UsersCollection:  viper.GetString("USERS_COLLECTION"),
			OrdersCollection: viper.GetString("ORDERS_COLLECTION"),
			TimeoutSeconds:   viper.GetInt("STORE_TIMEOUT_SECONDS"),
		},
	}

	return config, nil
}
