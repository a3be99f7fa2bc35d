// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	Seed           = pflag.Bool("seed", false, "Seeds the database with the admin account and sample videos, then exits")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
)

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")
	v.BindEnv("app.base_url", "app_base_url")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.ssl_enabled", "host_ssl_enabled")

	v.BindEnv("jwt.secret", "jwt_secret")

	v.BindEnv("db.path", "db_path")

	v.BindEnv("mail.host", "mail_host")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.sender_address", "mail_sender_address")
	v.BindEnv("mail.password", "mail_password")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.base_url", "http://localhost:8080")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.ssl_enabled", false)

	v.SetDefault("db.path", "database.db")

	v.SetDefault("mail.port", 587)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); ok {
			return errors.New("config.toml file is missing")
		}

		return fmt.Errorf("failed to read config file, %w", err)
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	// Nothing can sign or verify without this, so refuse to start
	// instead of running unauthenticated.
	if v.GetString("jwt.secret") == "" {
		return errors.New("jwt.secret is missing, set it in config.toml or as the jwt_secret environment variable")
	}

	if v.GetString("app.base_url") == "" {
		return errors.New("app.base_url can't be empty")
	}

	if v.GetString("mail.host") == "" {
		return errors.New("mail.host can't be empty")
	}

	if v.GetInt("mail.port") <= 0 {
		return errors.New("invalid mail.port provided")
	}

	if v.GetString("mail.sender_address") == "" {
		return errors.New("mail.sender_address can't be empty")
	}

	if v.GetString("mail.password") == "" {
		return errors.New("mail.password can't be empty")
	}

	return nil
}
