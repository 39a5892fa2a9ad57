package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Source is a flat key/value provider, keys are fully prefixed
type Source interface {
	Lookup(key string) (string, bool)
}

// MapSource serves values from memory
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// EnvSource serves values from the process environment
type EnvSource struct{}

func (EnvSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Layered consults each source in order, first hit wins
type Layered []Source

func (l Layered) Lookup(key string) (string, bool) {
	for _, s := range l {
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// ReadFile parses a dotenv file without touching the environment
func ReadFile(path string) (MapSource, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return MapSource(values), nil
}
