package config

import (
	"github.com/knadh/koanf/providers/confmap"
)

func DefaultConfig() map[string]interface{} {
	return map[string]interface{}{
		"db": map[string]interface{}{
			"path": "~/.fitremind/fitremind.db",
		},
		"notify": map[string]interface{}{
			"on_start":  true,
			"seed":      0, // 0 seeds from the clock
			"templates": []string{},
		},
		"log": map[string]interface{}{
			"use_cases": false,
			"level":     "info",
		},
	}
}

func NewDefaultProvider() *confmap.Confmap {
	return confmap.Provider(DefaultConfig(), ".")
}

func GetDefaultConfigPath() string {
	return "~/.fitremind/config.yaml"
}
