package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type ClubLedgerConfig struct {
	Env               string `yaml:"env"`
	HTTPServer        `yaml:"http_server"`
	MetricsServer     `yaml:"metrics_server"`
	EventDB           `yaml:"event_db"`
	LogConfig         `yaml:"log_config"`
	SettlementService `yaml:"settlement-service"`
	KafkaService      `yaml:"kafka-service"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MetricsServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type EventDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type SettlementService struct {
	Host          string `yaml:"host"`
	Port          string `yaml:"port"`
	ClubAccountID string `yaml:"club_account_id"`
}

type KafkaService struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	Mechanism  string `yaml:"mechanism"`
	TLSEnabled bool   `yaml:"tls_enabled"`
}

func MustLoad() *ClubLedgerConfig {

	// Processing env config variable and file
	configPath := os.Getenv("CLUB_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("CLUB_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg ClubLedgerConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
