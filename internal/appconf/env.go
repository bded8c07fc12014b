package appconf

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by the binaries.
const EnvPrefix = "TRIPSPLIT_"

// LoadDotEnv loads the given .env files into the process environment.
// Missing files are ignored and existing variables are never overridden.
func LoadDotEnv(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		_ = godotenv.Load(p)
	}
}

// EnvString returns TRIPSPLIT_<name> or def when unset.
func EnvString(name, def string) string {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok && v != "" {
		return v
	}
	return def
}

// EnvInt returns TRIPSPLIT_<name> parsed as an int, or def when unset or malformed.
func EnvInt(name string, def int) int {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// SplitList splits a comma separated flag value, dropping blank entries.
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
