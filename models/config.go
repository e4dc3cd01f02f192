package models

import "time"

// Config holds all configuration for the console
type Config struct {
	// Application
	AppName    string `mapstructure:"app_name"`
	AppVersion string `mapstructure:"app_version"`
	AppEnv     string `mapstructure:"app_env"`
	AppHost    string `mapstructure:"app_host"`
	AppPort    string `mapstructure:"app_port"`

	// Remote API
	APIBaseURL string        `mapstructure:"api_base_url"`
	APITimeout time.Duration `mapstructure:"api_timeout"`
	APIToken   string        `mapstructure:"api_token"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// CORS
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Base Path
	BasePath string `mapstructure:"basePath"`

	// List screens
	RequestsPageSize   int           `mapstructure:"requests_page_size"`
	RequestsFetchLimit int           `mapstructure:"requests_fetch_limit"`
	ReportsPageSize    int           `mapstructure:"reports_page_size"`
	DefaultPageSize    int           `mapstructure:"default_page_size"`
	SessionIdleTimeout time.Duration `mapstructure:"session_idle_timeout"`

	// Dashboard
	DashboardAnalyticsDelay time.Duration `mapstructure:"dashboard_analytics_delay"`

	// Background refresh, empty disables the schedule
	RefreshSchedule string `mapstructure:"refresh_schedule"`
	SweepSchedule   string `mapstructure:"sweep_schedule"`

	// MQTT lifecycle notifications, empty broker disables publishing
	MQTTBroker      string `mapstructure:"mqtt_broker"`
	MQTTClientID    string `mapstructure:"mqtt_client_id"`
	MQTTUsername    string `mapstructure:"mqtt_username"`
	MQTTPassword    string `mapstructure:"mqtt_password"`
	MQTTTopicPrefix string `mapstructure:"mqtt_topic_prefix"`

	// Report export
	ExportDir string `mapstructure:"export_dir"`
}
