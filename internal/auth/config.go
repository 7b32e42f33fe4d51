package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret   string                    `mapstructure:"jwt_secret"`
	RedirectURL string                    `mapstructure:"redirect_url"`
	FrontendURL string                    `mapstructure:"frontend_url"`
	Providers   map[string]ProviderConfig `mapstructure:"providers"`
}

// ProviderConfig holds configuration for a specific provider
type ProviderConfig struct {
	ClientID          string `mapstructure:"client_id"`
	ClientSecret      string `mapstructure:"client_secret"`
	EnterpriseBaseURL string `mapstructure:"enterprise_base_url"`
}

// LoadAuthConfig loads and validates authentication configuration. Values from the
// optional auth.yaml are overridden by JWT_SECRET, AUTH_REDIRECT_URL, AUTH_FRONTEND_URL
// and GITHUB_CLIENT_ID/GITHUB_CLIENT_SECRET/GITHUB_ENTERPRISE_URL.
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}
	if config.Providers == nil {
		config.Providers = map[string]ProviderConfig{}
	}

	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if redirectURL := os.Getenv("AUTH_REDIRECT_URL"); redirectURL != "" {
		config.RedirectURL = redirectURL
	}
	if frontendURL := os.Getenv("AUTH_FRONTEND_URL"); frontendURL != "" {
		config.FrontendURL = frontendURL
	}
	config.RedirectURL = strings.TrimRight(config.RedirectURL, "/")

	overrideGitHubFromEnv(&config)

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// GetProvider returns the configuration for a specific provider
func (c *AuthConfig) GetProvider(provider string) (*ProviderConfig, error) {
	providerConfig, exists := c.Providers[provider]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}

	return &providerConfig, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.RedirectURL == "" {
		return fmt.Errorf("redirect URL is required")
	}

	if len(c.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}

	for providerName, provider := range c.Providers {
		if provider.ClientID == "" {
			return fmt.Errorf("client_id is required for provider '%s'", providerName)
		}
		if provider.ClientSecret == "" {
			return fmt.Errorf("client_secret is required for provider '%s'", providerName)
		}
	}

	return nil
}

func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("redirect_url", "http://localhost:7008")
	v.SetDefault("frontend_url", "http://localhost:3000")
}

// overrideGitHubFromEnv fills the "github" provider from environment variables
func overrideGitHubFromEnv(config *AuthConfig) {
	clientID := os.Getenv("GITHUB_CLIENT_ID")
	clientSecret := os.Getenv("GITHUB_CLIENT_SECRET")
	enterpriseURL := os.Getenv("GITHUB_ENTERPRISE_URL")
	if clientID == "" && clientSecret == "" && enterpriseURL == "" {
		return
	}

	provider := config.Providers[GitHubProvider]
	if clientID != "" {
		provider.ClientID = clientID
	}
	if clientSecret != "" {
		provider.ClientSecret = clientSecret
	}
	if enterpriseURL != "" {
		provider.EnterpriseBaseURL = strings.TrimRight(enterpriseURL, "/")
	}
	config.Providers[GitHubProvider] = provider
}
