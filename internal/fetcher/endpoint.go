package fetcher

import (
	"net"
	"net/url"
	"strconv"

	"conversationLogger/configs"
)

// Endpoint is the remote conversations API the fetcher reads from.
type Endpoint struct {
	Scheme string
	Host   string
	Port   int
	Path   string
}

// DefaultEndpoint is the deployed conversation logger.
func DefaultEndpoint() Endpoint {
	return Endpoint{
		Scheme: "http",
		Host:   "54.71.183.198",
		Port:   8000,
		Path:   "/api/conversations",
	}
}

// EndpointFromConfig reads fetcher.*; an unset host falls back to DefaultEndpoint.
func EndpointFromConfig(config *configs.Config) Endpoint {
	if config.Viper.GetString("fetcher.host") == "" {
		return DefaultEndpoint()
	}
	return Endpoint{
		Scheme: config.Viper.GetString("fetcher.scheme"),
		Host:   config.Viper.GetString("fetcher.host"),
		Port:   config.Viper.GetInt("fetcher.port"),
		Path:   config.Viper.GetString("fetcher.path"),
	}
}

// ParseEndpoint splits a URL such as http://localhost:8000/api/conversations.
func ParseEndpoint(raw string) (Endpoint, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Endpoint{}, err
	}
	endpoint := Endpoint{Scheme: u.Scheme, Host: u.Hostname(), Path: u.Path}
	if p := u.Port(); p != "" {
		if endpoint.Port, err = strconv.Atoi(p); err != nil {
			return Endpoint{}, err
		}
	}
	return endpoint, nil
}

func (e Endpoint) URL() string {
	scheme := e.Scheme
	if scheme == "" {
		scheme = "http"
	}
	host := e.Host
	if e.Port > 0 {
		host = net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
	}
	return (&url.URL{Scheme: scheme, Host: host, Path: e.Path}).String()
}
