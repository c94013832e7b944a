// Package config loads simulator settings from an optional JSON file,
// falling back to compiled-in defaults for every key.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"howitzer/constant"
)

// Load reads howitzer.cfg.json from configDir and sets default values.
// A missing config file is fine; any other read error is not.
func Load(configDir string) error {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.dir", "./logs")

	viper.SetDefault("audio.enabled", true)

	viper.SetDefault("sim.timeStep", constant.TimeStep)
	viper.SetDefault("sim.hitTolerance", constant.HitTolerance)
	viper.SetDefault("sim.fieldWidth", constant.FieldWidth)
	viper.SetDefault("sim.fieldHeight", constant.FieldHeight)

	viper.SetDefault("howitzer.muzzleVelocity", constant.DefaultMuzzleVelocity)
	viper.SetDefault("howitzer.elevationDeg", constant.DefaultElevationDeg)

	viper.SetDefault("terrain.seed", 0) // 0 = seed from wall clock

	viper.SetConfigName("howitzer.cfg")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetFloat64 returns a float config value.
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetInt64 returns an int64 config value.
func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
