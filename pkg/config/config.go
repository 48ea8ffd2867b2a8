package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de ambos binarios (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Inventory InventoryAPIConfig
	Storage   StorageConfig
	DB        DBConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// InventoryAPIConfig backend REST que consume el dashboard.
type InventoryAPIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout duración del timeout por petición; 10s si no es positivo.
func (c InventoryAPIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Drivers de almacenamiento del backend de referencia.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// StorageConfig selección del repositorio del backend de referencia.
type StorageConfig struct {
	Driver string // memory | postgres
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string

	// Pool
	MaxConns               int
	MinConns               int
	MaxConnLifetimeMinutes int
	MaxConnIdleMinutes     int
	PreferIPv4             bool
}

// MaxConnLifetime vida máxima de una conexión del pool; 60 min si no es positivo.
func (c DBConfig) MaxConnLifetime() time.Duration {
	if c.MaxConnLifetimeMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.MaxConnLifetimeMinutes) * time.Minute
}

// MaxConnIdleTime tiempo máximo ociosa; 30 min si no es positivo.
func (c DBConfig) MaxConnIdleTime() time.Duration {
	if c.MaxConnIdleMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.MaxConnIdleMinutes) * time.Minute
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN connection string con URL encoding para caracteres especiales en la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// Load lee la configuración desde variables de entorno y, si existen, .env o config.env.
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventory-dashboard"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Inventory: InventoryAPIConfig{
			BaseURL:        getString(v, "INVENTORY_API_URL", "http://localhost:5000"),
			TimeoutSeconds: getInt(v, "INVENTORY_API_TIMEOUT_SECONDS", 10),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getString(v, "STORAGE_DRIVER", StorageMemory)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventory"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),

			MaxConns:               getInt(v, "DB_MAX_CONNS", 10),
			MinConns:               getInt(v, "DB_MIN_CONNS", 1),
			MaxConnLifetimeMinutes: getInt(v, "DB_MAX_CONN_LIFETIME_MINUTES", 60),
			MaxConnIdleMinutes:     getInt(v, "DB_MAX_CONN_IDLE_MINUTES", 30),
			PreferIPv4:             getBool(v, "DB_PREFER_IPV4", true),
		},
	}

	switch cfg.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		return nil, fmt.Errorf("config: STORAGE_DRIVER inválido %q (memory|postgres)", cfg.Storage.Driver)
	}
	if cfg.DB.MaxConns < 1 || cfg.DB.MinConns < 0 || cfg.DB.MinConns > cfg.DB.MaxConns {
		return nil, fmt.Errorf("config: pool inválido DB_MIN_CONNS=%d DB_MAX_CONNS=%d", cfg.DB.MinConns, cfg.DB.MaxConns)
	}
	if _, err := url.ParseRequestURI(cfg.Inventory.BaseURL); err != nil {
		return nil, fmt.Errorf("config: INVENTORY_API_URL inválida: %w", err)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}
