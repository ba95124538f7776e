package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// Default production endpoints and tuning values.
const (
	DefaultBaseURL        = "https://kyfw.12306.cn"
	DefaultStationNameURL = "https://kyfw.12306.cn/otn/resources/js/framework/station_name.js"
	DefaultLCQueryInitURL = "https://kyfw.12306.cn/otn/lcQuery/init"

	defaultPort             = 16206
	defaultTimeoutMS        = 15000
	defaultMaxTransferPages = 10
	defaultTransferLimit    = 10
)

// LoadAppConfig loads and validates the application configuration
// from config.yml. A missing file is not an error: the defaults cover
// the public endpoints.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	var cfg AppConfig
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
		v := validator.New()
		if err := v.Struct(cfg.API); err != nil {
			return err
		}
		if err := v.Struct(cfg.Query); err != nil {
			return err
		}
	}
	Config = ApplyDefaults(cfg)
	return nil
}

// ApplyDefaults fills the zero fields of cfg with the built-in
// defaults and returns the result.
func ApplyDefaults(cfg AppConfig) AppConfig {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.API.StationNameURL == "" {
		cfg.API.StationNameURL = DefaultStationNameURL
	}
	if cfg.API.LCQueryInitURL == "" {
		cfg.API.LCQueryInitURL = DefaultLCQueryInitURL
	}
	if cfg.API.TimeoutMS == 0 {
		cfg.API.TimeoutMS = defaultTimeoutMS
	}
	if cfg.Query.MaxTransferPages == 0 {
		cfg.Query.MaxTransferPages = defaultMaxTransferPages
	}
	if cfg.Query.DefaultTransferLimit == 0 {
		cfg.Query.DefaultTransferLimit = defaultTransferLimit
	}
	return cfg
}
