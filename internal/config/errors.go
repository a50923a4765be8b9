package config

import (
	"errors"
	"fmt"
)

// ErrNoClient is returned when no client is given on the command line and
// none can be derived from the config file.
var ErrNoClient = errors.New("no client given; pass one as argument or set a default client in the config file")

// ClientNotFoundError reports a client without a configured data file.
type ClientNotFoundError struct {
	Client string
}

func (e *ClientNotFoundError) Error() string {
	return fmt.Sprintf("client %q not found in the clients table of the config file", e.Client)
}

// ConfigurationError reports a setting that is missing or invalid for the
// requested mode. It is raised before any parsing starts.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}
