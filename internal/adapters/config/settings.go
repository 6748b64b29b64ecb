// Package config loads tunable engine parameters from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"fulfillment/internal/core/domain/services"

	"gopkg.in/yaml.v3"
)

type settingsFile struct {
	PreparationHours       int     `yaml:"preparation_hours"`
	ExperiencePricePerHour float64 `yaml:"experience_price_per_hour"`
}

// LoadAllocationSettings reads allocation settings from the YAML file at
// path. A missing file yields the default settings; a present but malformed
// or invalid file is an error.
func LoadAllocationSettings(path string) (services.AllocationSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return services.DefaultAllocationSettings(), nil
		}
		return services.AllocationSettings{}, fmt.Errorf("read settings file: %w", err)
	}

	file := settingsFile{
		PreparationHours:       int(services.DefaultPreparationTime / time.Hour),
		ExperiencePricePerHour: services.DefaultExperienceRatePerHour,
	}
	if err = yaml.Unmarshal(data, &file); err != nil {
		return services.AllocationSettings{}, fmt.Errorf("parse settings file: %w", err)
	}

	settings := services.AllocationSettings{
		PreparationTime:       time.Duration(file.PreparationHours) * time.Hour,
		ExperienceRatePerHour: file.ExperiencePricePerHour,
	}
	if err = settings.Validate(); err != nil {
		return services.AllocationSettings{}, err
	}

	return settings, nil
}
