package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubProvider is the provider name used in auth routes
const GitHubProvider = "github"

// IdentityProvider turns an OAuth authorization code into the signed-in person's profile
type IdentityProvider interface {
	AuthCodeURL(state, redirectURL string) string
	FetchProfile(ctx context.Context, code, redirectURL string) (*UserProfile, error)
}

// GitHubClient wraps the GitHub API client with authentication support
type GitHubClient struct {
	config *ProviderConfig
}

// UserProfile represents the identity returned by the provider
type UserProfile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// NewGitHubClient creates a new GitHub API client
func NewGitHubClient(config *ProviderConfig) *GitHubClient {
	return &GitHubClient{config: config}
}

func (c *GitHubClient) apiClient(httpClient *http.Client) (*github.Client, error) {
	if c.config.EnterpriseBaseURL != "" {
		return github.NewClient(httpClient).WithEnterpriseURLs(c.config.EnterpriseBaseURL, c.config.EnterpriseBaseURL)
	}
	return github.NewClient(httpClient), nil
}

// AuthCodeURL returns the provider's authorization URL
func (c *GitHubClient) AuthCodeURL(state, redirectURL string) string {
	return c.GetOAuth2Config(redirectURL).AuthCodeURL(state)
}

// FetchProfile exchanges the code for an access token and reads the user's profile
func (c *GitHubClient) FetchProfile(ctx context.Context, code, redirectURL string) (*UserProfile, error) {
	token, err := c.GetOAuth2Config(redirectURL).Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	return c.GetUserProfile(ctx, token.AccessToken)
}

// GetUserProfile fetches user profile information from GitHub API
func (c *GitHubClient) GetUserProfile(ctx context.Context, accessToken string) (*UserProfile, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client, err := c.apiClient(oauth2.NewClient(ctx, ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("invalid access token")
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	// The email list needs the user:email scope; fall back to the public profile email
	emails, _, err := client.Users.ListEmails(ctx, nil)
	if err != nil {
		emails = []*github.UserEmail{}
	}

	return &UserProfile{
		ID:        user.GetID(),
		Username:  user.GetLogin(),
		Email:     pickEmail(emails, user.GetEmail()),
		Name:      user.GetName(),
		AvatarURL: user.GetAvatarURL(),
	}, nil
}

// pickEmail prefers the verified primary address, then any verified one
func pickEmail(emails []*github.UserEmail, fallback string) string {
	for _, email := range emails {
		if email.GetPrimary() && email.GetVerified() {
			return email.GetEmail()
		}
	}
	for _, email := range emails {
		if email.GetVerified() {
			return email.GetEmail()
		}
	}
	return fallback
}

// GetOAuth2Config returns the OAuth2 configuration for this GitHub client
func (c *GitHubClient) GetOAuth2Config(redirectURL string) *oauth2.Config {
	endpoint := oauth2.Endpoint{
		AuthURL:  "https://github.com/login/oauth/authorize",
		TokenURL: "https://github.com/login/oauth/access_token",
	}
	if c.config.EnterpriseBaseURL != "" {
		endpoint = oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("%s/login/oauth/authorize", c.config.EnterpriseBaseURL),
			TokenURL: fmt.Sprintf("%s/login/oauth/access_token", c.config.EnterpriseBaseURL),
		}
	}

	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"user:email", "read:user"},
		Endpoint:     endpoint,
	}
}
