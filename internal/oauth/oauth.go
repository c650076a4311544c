package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"vraee_backend/internal/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/linkedin"
)

// Profile - нормализованный профиль идентити-провайдера.
// Разные форматы ответов Google и LinkedIn приводятся к этой
// структуре до того, как попадут в логику связывания аккаунтов.
type Profile struct {
	Email      string
	FirstName  string
	LastName   string
	Provider   string
	ProviderID string
}

// Provider - один настроенный OAuth-провайдер.
type Provider interface {
	Name() string
	// AuthCodeURL возвращает URL авторизации со state-параметром.
	AuthCodeURL(state string) string
	// Exchange меняет code на токен и запрашивает профиль пользователя.
	Exchange(ctx context.Context, code string) (*Profile, error)
}

const (
	googleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
	linkedinUserInfoURL = "https://api.linkedin.com/v2/userinfo"
)

type googleProvider struct {
	cfg *oauth2.Config
}

// NewGoogle собирает Google-провайдер из конфигурации.
func NewGoogle(p config.OAuthProvider) Provider {
	return &googleProvider{
		cfg: &oauth2.Config{
			ClientID:     p.ClientID,
			ClientSecret: p.ClientSecret,
			RedirectURL:  p.CallbackURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (g *googleProvider) Name() string { return "google" }

func (g *googleProvider) AuthCodeURL(state string) string {
	return g.cfg.AuthCodeURL(state)
}

func (g *googleProvider) Exchange(ctx context.Context, code string) (*Profile, error) {
	token, err := g.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google code exchange failed: %w", err)
	}

	var raw struct {
		ID         string `json:"id"`
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := fetchJSON(ctx, g.cfg, token, googleUserInfoURL, &raw); err != nil {
		return nil, err
	}
	if raw.Email == "" {
		return nil, fmt.Errorf("google profile has no email")
	}

	return &Profile{
		Email:      raw.Email,
		FirstName:  raw.GivenName,
		LastName:   raw.FamilyName,
		Provider:   "google",
		ProviderID: raw.ID,
	}, nil
}

type linkedinProvider struct {
	cfg *oauth2.Config
}

// NewLinkedIn собирает LinkedIn-провайдер из конфигурации.
func NewLinkedIn(p config.OAuthProvider) Provider {
	return &linkedinProvider{
		cfg: &oauth2.Config{
			ClientID:     p.ClientID,
			ClientSecret: p.ClientSecret,
			RedirectURL:  p.CallbackURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     linkedin.Endpoint,
		},
	}
}

func (l *linkedinProvider) Name() string { return "linkedin" }

func (l *linkedinProvider) AuthCodeURL(state string) string {
	return l.cfg.AuthCodeURL(state)
}

func (l *linkedinProvider) Exchange(ctx context.Context, code string) (*Profile, error) {
	token, err := l.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("linkedin code exchange failed: %w", err)
	}

	var raw struct {
		Sub        string `json:"sub"`
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := fetchJSON(ctx, l.cfg, token, linkedinUserInfoURL, &raw); err != nil {
		return nil, err
	}
	if raw.Email == "" {
		return nil, fmt.Errorf("linkedin profile has no email")
	}

	return &Profile{
		Email:      raw.Email,
		FirstName:  raw.GivenName,
		LastName:   raw.FamilyName,
		Provider:   "linkedin",
		ProviderID: raw.Sub,
	}, nil
}

func fetchJSON(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token, url string, dst interface{}) error {
	resp, err := cfg.Client(ctx, token).Get(url)
	if err != nil {
		return fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("userinfo request returned %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}
