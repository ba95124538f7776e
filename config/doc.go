// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct
// tags. The file is optional; built-in defaults point at the public
// 12306 endpoints.
package config
