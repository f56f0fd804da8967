package service

import (
	"context"
	"fmt"

	cfg "github.com/maheshrc27/brandlab-api/configs"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

type GoogleProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*transfer.GoogleUserInfo, error)
}

type googleProvider struct {
	oauth *oauth2.Config
}

func NewGoogleProvider(gc cfg.Google) GoogleProvider {
	return &googleProvider{
		oauth: &oauth2.Config{
			ClientID:     gc.ClientID,
			ClientSecret: gc.ClientSecret,
			RedirectURL:  gc.RedirectURI,
			Scopes:       []string{googleoauth.UserinfoEmailScope, googleoauth.UserinfoProfileScope},
			Endpoint:     google.Endpoint,
		},
	}
}

func (p *googleProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (p *googleProvider) Exchange(ctx context.Context, code string) (*transfer.GoogleUserInfo, error) {
	if p.oauth.ClientID == "" || p.oauth.ClientSecret == "" || p.oauth.RedirectURL == "" {
		return nil, fmt.Errorf("google sign-in is not configured")
	}

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging google code: %w", err)
	}

	svc, err := googleoauth.NewService(ctx, option.WithTokenSource(p.oauth.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("creating google userinfo client: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading google profile: %w", err)
	}

	verified := info.VerifiedEmail != nil && *info.VerifiedEmail
	return &transfer.GoogleUserInfo{
		ID:            info.Id,
		Email:         info.Email,
		VerifiedEmail: verified,
		Name:          info.Name,
		Picture:       info.Picture,
		HostedDomain:  info.Hd,
	}, nil
}
