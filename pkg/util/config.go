package util

import (
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	OsmFile    string `mapstructure:"osm_file" validate:"required"`
	OutputFile string `mapstructure:"output_file" validate:"required"`
	NumWorkers int    `mapstructure:"num_workers" validate:"gte=0"`

	// inspector
	InspectLat      float64 `mapstructure:"inspect_lat" validate:"gte=-90,lte=90"`
	InspectLon      float64 `mapstructure:"inspect_lon" validate:"gte=-180,lte=180"`
	InspectRadiusKm float64 `mapstructure:"inspect_radius_km" validate:"gte=0"`

	// optional guidance threshold overrides. zero value = keep default.
	NarrowTurnAngle      float64 `mapstructure:"narrow_turn_angle" validate:"gte=0,lte=180"`
	FuzzyAngleDifference float64 `mapstructure:"fuzzy_angle_difference" validate:"gte=0,lte=180"`
	GroupAngle           float64 `mapstructure:"group_angle" validate:"gte=0,lte=180"`
}

func ReadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	viper.SetDefault("output_file", "./data/turn_data.bz2")
	viper.SetDefault("num_workers", runtime.NumCPU())
	viper.SetDefault("inspect_radius_km", 0.5)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("fatal error config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("fatal error config file: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, WrapErrorf(err, ErrBadParamInput, "invalid config")
	}

	return &cfg, nil
}
