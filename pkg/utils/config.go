package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	AWS    AWSConfig
	Tables TableConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type AWSConfig struct {
	Region    string
	Endpoint  string // optional override for local DynamoDB
	AccessKey string
	SecretKey string
}

type TableConfig struct {
	Flights    string
	Bookings   string
	Passengers string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "airline-booking")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("AWS_REGION", "eu-west-1")
	viper.SetDefault("FLIGHTS_TABLE", "flights")
	viper.SetDefault("BOOKINGS_TABLE", "bookings")
	viper.SetDefault("PASSENGERS_TABLE", "passengers")

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine, environment variables still apply.
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		AWS: AWSConfig{
			Region:    viper.GetString("AWS_REGION"),
			Endpoint:  viper.GetString("DYNAMODB_ENDPOINT"),
			AccessKey: viper.GetString("AWS_ACCESS_KEY_ID"),
			SecretKey: viper.GetString("AWS_SECRET_ACCESS_KEY"),
		},
		Tables: TableConfig{
			Flights:    viper.GetString("FLIGHTS_TABLE"),
			Bookings:   viper.GetString("BOOKINGS_TABLE"),
			Passengers: viper.GetString("PASSENGERS_TABLE"),
		},
	}

	return config, nil
}
