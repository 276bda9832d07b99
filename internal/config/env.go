package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads variables from the given .env files (default ".env")
// without overriding the real environment. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// ApplyEnv overlays POKEBROWSE_* and POKESERVE_* variables on cfg
func ApplyEnv(cfg *Config) {
	applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("POKEBROWSE_BASE_URL", &cfg.Browser.BaseURL)
	str("POKEBROWSE_COLLECTION", &cfg.Browser.Collection)
	str("POKEBROWSE_LOG_FILE", &cfg.Browser.LogFile)
	str("POKEBROWSE_REQUEST_TIMEOUT", &cfg.Browser.RequestTimeout)

	if v, ok := lookup("POKEBROWSE_DISCARD_STALE"); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.Fetch.DiscardStale = b
		} else {
			log.Printf("ignoring POKEBROWSE_DISCARD_STALE=%q: %v", v, err)
		}
	}

	str("POKESERVE_ADDR", &cfg.Server.Addr)
	str("POKESERVE_DRIVER", &cfg.Server.Driver)
	str("POKESERVE_DSN", &cfg.Server.DSN)
	str("POKESERVE_CSV", &cfg.Server.CSV)

	if v, ok := lookup("POKESERVE_PER_PAGE"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			cfg.Server.PerPage = n
		}
	}

	if v, ok := lookup("POKESERVE_CORS_ORIGINS"); ok && strings.TrimSpace(v) != "" {
		origins := []string{}
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.CORSOrigins = origins
	}
}
