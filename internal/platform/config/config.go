// Package config lee la configuración del proceso desde variables de
// entorno. Los paquetes de dominio nunca leen el entorno: reciben lo que
// necesitan desde aquí.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // IMPORT_TZ debe funcionar en imágenes sin zoneinfo
)

type Config struct {
	Port string

	LogLevel  string
	LogFormat string
	AppName   string

	// StoreDSN elige el backend de slots (ver storage.Open). Vacío = memoria.
	StoreDSN    string
	EventsSlot  string
	ProfileSlot string

	RemoteURL     string
	RemoteToken   string
	RemoteTimeout time.Duration

	// ImportLocation se usa para las fechas sin zona del CSV.
	ImportLocation *time.Location
}

// Load usa os.Getenv.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom permite inyectar el entorno en tests.
func LoadFrom(getenv func(string) string) (Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:        get("PORT", "8080"),
		LogLevel:    get("LOG_LEVEL", "info"),
		LogFormat:   get("LOG_FORMAT", "text"),
		AppName:     get("APP_NAME", "baby-journal"),
		StoreDSN:    get("STORE_DSN", get("DB_DSN", "")),
		EventsSlot:  get("EVENTS_SLOT", ""),
		ProfileSlot: get("PROFILE_SLOT", ""),
		RemoteURL:   get("REMOTE_URL", ""),
		RemoteToken: get("REMOTE_TOKEN", ""),
	}

	secs, err := strconv.Atoi(get("REMOTE_TIMEOUT_SECONDS", "10"))
	if err != nil || secs <= 0 {
		return Config{}, fmt.Errorf("REMOTE_TIMEOUT_SECONDS must be a positive integer")
	}
	cfg.RemoteTimeout = time.Duration(secs) * time.Second

	loc, err := time.LoadLocation(get("IMPORT_TZ", "UTC"))
	if err != nil {
		return Config{}, fmt.Errorf("IMPORT_TZ: %w", err)
	}
	cfg.ImportLocation = loc

	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}
