package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// APIConfig contains the 12306 endpoint configuration. All fields
// default to the public production endpoints.
type APIConfig struct {
	BaseURL        string `yaml:"baseURL" validate:"omitempty,url"`
	StationNameURL string `yaml:"stationNameURL" validate:"omitempty,url"`
	LCQueryInitURL string `yaml:"lcQueryInitURL" validate:"omitempty,url"`
	TimeoutMS      int    `yaml:"timeoutMS" validate:"gte=0"`
}

// QueryConfig tunes the query orchestrator.
type QueryConfig struct {
	// Hard cap on transfer-query continuation pages per call.
	MaxTransferPages int `yaml:"maxTransferPages" validate:"gte=0"`
	// Result count used when a transfer query does not specify one.
	DefaultTransferLimit int `yaml:"defaultTransferLimit" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	API    APIConfig    `yaml:"api"`
	Query  QueryConfig  `yaml:"query"`
}
