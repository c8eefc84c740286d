package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultPath = "secrets.json"

type DeviceConfig struct {
	Lat    float64      `mapstructure:"lat"`
	Lon    float64      `mapstructure:"lon"`
	Driver string       `mapstructure:"driver"` // "console" or "periph"
	Periph PeriphConfig `mapstructure:"periph"`
}

type PeriphConfig struct {
	I2CBus        string   `mapstructure:"i2c_bus"`
	ButtonPins    []string `mapstructure:"button_pins"`
	BacklightPins []string `mapstructure:"backlight_pins"`
}

type WifiConfig struct {
	SSID     string `mapstructure:"ssid"`
	Password string `mapstructure:"password"`
}

type ISSConfig struct {
	PositionURL     string        `mapstructure:"position_url"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

type GeocodeConfig struct {
	URL    string `mapstructure:"url"`
	APIKey string `mapstructure:"api_key"`
}

type LabelConfig struct {
	MaxLen int `mapstructure:"max_len"`
}

type HTTPConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxAttempts int           `mapstructure:"max_attempts"`
}

type NetworkConfig struct {
	ProbeAddr      string        `mapstructure:"probe_addr"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

type NTPConfig struct {
	Server string `mapstructure:"server"`
}

type ButtonsConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"` // "", "sqlite" or "postgres"
	DSN    string `mapstructure:"dsn"`
}

type CacheConfig struct {
	Backend   string        `mapstructure:"backend"` // "off", "sql" or "redis"
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl"`
	// Decimal places of the coordinate cache key.
	Precision int `mapstructure:"precision"`
}

type APIConfig struct {
	Addr       string `mapstructure:"addr"` // empty disables the API
	CORSOrigin string `mapstructure:"cors_origin"`
	JWTSecret  string `mapstructure:"jwt_secret"`
}

// Config is everything the gadget reads from its secrets file and the
// environment.
type Config struct {
	Device  DeviceConfig  `mapstructure:"device"`
	Wifi    WifiConfig    `mapstructure:"wifi"`
	ISS     ISSConfig     `mapstructure:"iss"`
	Geocode GeocodeConfig `mapstructure:"geocode"`
	Label   LabelConfig   `mapstructure:"label"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Network NetworkConfig `mapstructure:"network"`
	NTP     NTPConfig     `mapstructure:"ntp"`
	Buttons ButtonsConfig `mapstructure:"buttons"`
	Storage StorageConfig `mapstructure:"storage"`
	Cache   CacheConfig   `mapstructure:"cache"`
	API     APIConfig     `mapstructure:"api"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("device.lat", 52.967658)
	v.SetDefault("device.lon", -1.163135)
	v.SetDefault("device.driver", "console")
	v.SetDefault("device.periph.i2c_bus", "1")
	v.SetDefault("device.periph.button_pins", []string{"GPIO5", "GPIO6", "GPIO16", "GPIO20", "GPIO21"})
	v.SetDefault("device.periph.backlight_pins", []string{"GPIO12", "GPIO18", "GPIO13"})
	v.SetDefault("wifi.ssid", "")
	v.SetDefault("wifi.password", "")
	v.SetDefault("iss.position_url", "http://api.open-notify.org/iss-now.json")
	v.SetDefault("iss.refresh_interval", 10*time.Second)
	v.SetDefault("geocode.url", "https://geocode.maps.co/reverse")
	v.SetDefault("geocode.api_key", "")
	v.SetDefault("label.max_len", 13)
	v.SetDefault("http.timeout", 10*time.Second)
	v.SetDefault("http.max_attempts", 1)
	v.SetDefault("network.probe_addr", "api.open-notify.org:80")
	v.SetDefault("network.connect_timeout", 30*time.Second)
	v.SetDefault("ntp.server", "pool.ntp.org")
	v.SetDefault("buttons.poll_interval", 10*time.Millisecond)
	v.SetDefault("storage.driver", "")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("cache.backend", "off")
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.ttl", 24*time.Hour)
	v.SetDefault("cache.precision", 1)
	v.SetDefault("api.addr", "")
	v.SetDefault("api.cors_origin", "*")
	v.SetDefault("api.jwt_secret", "")
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Defaults returns the configuration used when no file can be read.
// Environment overrides still apply.
func Defaults() *Config {
	var cfg Config
	// Defaults are all well-formed; Unmarshal cannot fail on them.
	_ = newViper().Unmarshal(&cfg)
	return &cfg
}

// Load reads the JSON secrets file at path, applies environment overrides
// (DEVICE_LAT, ISS_REFRESH_INTERVAL, ...) and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config %q: decode: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.Device.Lat < -90 || c.Device.Lat > 90 {
		errs = append(errs, fmt.Errorf("device.lat %v out of range", c.Device.Lat))
	}
	if c.Device.Lon < -180 || c.Device.Lon > 180 {
		errs = append(errs, fmt.Errorf("device.lon %v out of range", c.Device.Lon))
	}
	switch c.Device.Driver {
	case "console", "periph":
	default:
		errs = append(errs, fmt.Errorf("device.driver %q: want console or periph", c.Device.Driver))
	}
	if c.Device.Driver == "periph" && len(c.Device.Periph.BacklightPins) != 3 {
		errs = append(errs, errors.New("device.periph.backlight_pins: want red, green and blue"))
	}
	if c.ISS.RefreshInterval <= 0 {
		errs = append(errs, errors.New("iss.refresh_interval must be positive"))
	}
	if c.Label.MaxLen < 0 {
		errs = append(errs, errors.New("label.max_len must not be negative"))
	}
	if c.HTTP.MaxAttempts < 1 {
		errs = append(errs, errors.New("http.max_attempts must be at least 1"))
	}

	switch c.Storage.Driver {
	case "", "sqlite", "postgres":
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q: want sqlite or postgres", c.Storage.Driver))
	}
	if c.Storage.Driver != "" && strings.TrimSpace(c.Storage.DSN) == "" {
		errs = append(errs, errors.New("storage.dsn is required with storage.driver"))
	}

	switch c.Cache.Backend {
	case "off", "redis":
	case "sql":
		if c.Storage.Driver == "" {
			errs = append(errs, errors.New("cache.backend sql needs storage.driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.backend %q: want off, sql or redis", c.Cache.Backend))
	}

	return errors.Join(errs...)
}

// Get returns the environment variable key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
