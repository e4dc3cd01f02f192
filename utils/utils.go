package utils

import (
	"elevatorops-console/models"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// GetConfig read the configuration from environment variables or config files
func GetConfig() (*models.Config, error) {
	config, err := Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return config, nil
}

// Load initializes and returns the console configuration using Viper
func Load() (*models.Config, error) {
	// A local .env only seeds the environment, real env vars win
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Config file not found (%v), using defaults and environment variables\n", err)
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	flattenNestedConfig(v)

	var config models.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "Elevator Ops Console")
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("app_env", "development")
	v.SetDefault("app_host", "0.0.0.0")
	v.SetDefault("app_port", "8082")

	v.SetDefault("api_base_url", "http://localhost:3000/api")
	v.SetDefault("api_timeout", 15*time.Second)
	v.SetDefault("api_token", "")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("basePath", "/api/v1")

	v.SetDefault("requests_page_size", 9)
	v.SetDefault("requests_fetch_limit", 100)
	v.SetDefault("reports_page_size", 10)
	v.SetDefault("default_page_size", 10)
	v.SetDefault("session_idle_timeout", 30*time.Minute)

	v.SetDefault("dashboard_analytics_delay", 300*time.Millisecond)
	v.SetDefault("refresh_schedule", "")
	v.SetDefault("sweep_schedule", "@every 1m")

	v.SetDefault("mqtt_broker", "")
	v.SetDefault("mqtt_client_id", "elevatorops-console")
	v.SetDefault("mqtt_username", "")
	v.SetDefault("mqtt_password", "")
	v.SetDefault("mqtt_topic_prefix", "elevatorops")

	v.SetDefault("export_dir", "./exports")
}

// validate checks if all required configuration is provided
func validate(c *models.Config) error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("api_base_url is required")
	}
	if c.RequestsPageSize <= 0 || c.ReportsPageSize <= 0 || c.DefaultPageSize <= 0 {
		return fmt.Errorf("page sizes must be positive")
	}
	if c.RequestsFetchLimit < 0 {
		return fmt.Errorf("requests_fetch_limit cannot be negative")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("api_timeout must be positive")
	}
	if c.DashboardAnalyticsDelay < 0 {
		return fmt.Errorf("dashboard_analytics_delay cannot be negative")
	}
	return nil
}

// flattenNestedConfig maps the nested config.json sections onto the flat keys
func flattenNestedConfig(v *viper.Viper) {
	nested := map[string]string{
		"app.name":                     "app_name",
		"app.version":                  "app_version",
		"app.env":                      "app_env",
		"app.host":                     "app_host",
		"app.port":                     "app_port",
		"api.base_url":                 "api_base_url",
		"api.timeout":                  "api_timeout",
		"api.token":                    "api_token",
		"logging.level":                "log_level",
		"logging.format":               "log_format",
		"console.requests_page_size":   "requests_page_size",
		"console.requests_fetch_limit": "requests_fetch_limit",
		"console.reports_page_size":    "reports_page_size",
		"console.default_page_size":    "default_page_size",
		"console.session_idle_timeout": "session_idle_timeout",
		"console.refresh_schedule":     "refresh_schedule",
		"console.sweep_schedule":       "sweep_schedule",
		"dashboard.analytics_delay":    "dashboard_analytics_delay",
		"mqtt.broker":                  "mqtt_broker",
		"mqtt.client_id":               "mqtt_client_id",
		"mqtt.username":                "mqtt_username",
		"mqtt.password":                "mqtt_password",
		"mqtt.topic_prefix":            "mqtt_topic_prefix",
		"export.dir":                   "export_dir",
	}
	for from, to := range nested {
		if v.IsSet(from) {
			v.Set(to, v.Get(from))
		}
	}

	if v.IsSet("cors.origins") {
		v.Set("cors_origins", v.GetStringSlice("cors.origins"))
	}
}

// PrintPrettyJSON takes any struct or map and prints it as pretty JSON
func PrintPrettyJSON(data interface{}) string {
	prettyJSON, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Sprintf("Failed to generate JSON: %v", err)
	}
	return string(prettyJSON)
}

// GenerateUUID returns a new UUID string
func GenerateUUID() string {
	return uuid.New().String()
}
