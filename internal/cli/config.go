package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds CLI configuration
type Config struct {
	ServerURL    string
	AccessToken  string
	RefreshToken string
	TokenFile    string
	Output       string
	Verbose      bool
}

// Tokens is the on-disk token pair
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("SCOREKEEP_SERVER", "http://localhost:8080"),
		AccessToken: os.Getenv("SCOREKEEP_TOKEN"),
		TokenFile:   getEnvOrDefault("SCOREKEEP_TOKEN_FILE", defaultTokenFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadTokens loads the token pair from file if no token is already set
func (c *Config) LoadTokens() error {
	if c.AccessToken != "" {
		return nil
	}

	data, err := os.ReadFile(c.TokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No token file is fine
		}
		return err
	}

	var tokens Tokens
	if err := json.Unmarshal(data, &tokens); err != nil {
		return err
	}

	c.AccessToken = tokens.AccessToken
	c.RefreshToken = tokens.RefreshToken
	return nil
}

// SaveTokens persists the token pair to the token file
func (c *Config) SaveTokens(access, refresh string) error {
	c.AccessToken = access
	c.RefreshToken = refresh

	data, err := json.Marshal(Tokens{
		AccessToken:  access,
		RefreshToken: refresh,
	})
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.TokenFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.TokenFile, data, 0600)
}

// ClearTokens removes the stored token pair
func (c *Config) ClearTokens() error {
	c.AccessToken = ""
	c.RefreshToken = ""

	if err := os.Remove(c.TokenFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".scorekeep/tokens.json"
	}
	return filepath.Join(home, ".scorekeep", "tokens.json")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
