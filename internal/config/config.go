// Package config holds the process-wide settings of the server.
package config

import (
	"errors"
	"fmt"
	"strconv"
)

// DefaultPort is used when the PORT environment variable is unset or empty.
const DefaultPort = "8080"

// ErrInvalidPort is returned by Load when PORT is not a TCP port number.
var ErrInvalidPort = errors.New("invalid port")

// Config is built once at startup and shared read-only with the request handler.
type Config struct {
	// Port is the TCP port to listen on.
	Port string
	// Root is the directory files are served from. Request paths are
	// appended to it verbatim.
	Root string
	// Index is the default document, served for "/" and for any path that
	// does not exist under Root.
	Index string
}

// Load builds a Config from the environment. getenv is usually os.Getenv.
func Load(getenv func(string) string) (*Config, error) {
	port := getenv("PORT")
	if port == "" {
		port = DefaultPort
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPort, port, err)
	}

	return &Config{
		Port:  port,
		Root:  ".",
		Index: "index.html",
	}, nil
}

// Addr returns the listen address for all interfaces.
func (c *Config) Addr() string {
	return ":" + c.Port
}
