package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

// Catalog configures the remote recipe catalog.
type Catalog struct {
	// URL is the base URL of the catalog's PostgREST interface.
	URL string `koanf:"url"`

	// APIKey authenticates catalog queries.
	APIKey string `koanf:"apikey"`
}

// Import configures the remote recipe import API used for social media
// links.
type Import struct {
	// Endpoint is the URL recipe import requests are posted to.
	Endpoint string `koanf:"endpoint"`

	// SocialHosts overrides the hosts dispatched to the import API instead
	// of direct page extraction. Empty keeps the built-in list.
	SocialHosts []string `koanf:"socialhosts"`
}

type Config struct {
	config.Common

	// Catalog is the configuration for the remote catalog.
	Catalog Catalog `koanf:"catalog"`

	// Import is the configuration for the import API.
	Import Import `koanf:"import"`
}
