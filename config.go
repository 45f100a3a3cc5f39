package rowmat

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the file-loadable configuration for a DB.
type Config struct {
	// TransferBufferSize is the per-field staging buffer capacity in
	// bytes.
	TransferBufferSize int `mapstructure:"transfer_buffer_size"`

	// MaxValueSize caps a single refetched value; 0 disables the cap.
	MaxValueSize int `mapstructure:"max_value_size"`

	Debug bool `mapstructure:"debug"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("transfer_buffer_size", 4096)
	v.SetDefault("max_value_size", 0)
	v.SetDefault("debug", false)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
