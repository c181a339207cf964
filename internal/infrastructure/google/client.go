package google

import (
	"context"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"shopmart/pkg/errors"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is the subset of the Google userinfo payload the storefront uses.
type Profile struct {
	Subject string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Client drives the authorization-code flow: build the consent URL,
// exchange the code, then fetch the profile with the access token.
type Client struct {
	oauth *oauth2.Config
	http  *resty.Client
}

func NewClient(clientID, clientSecret, redirectURL string) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     googleoauth.Endpoint,
		},
		http: resty.New(),
	}
}

func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// FetchProfile exchanges the authorization code and retrieves the userinfo
// record in one step; both the redirect and popup completion paths land here.
func (c *Client) FetchProfile(ctx context.Context, code string) (*Profile, error) {
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Unauthorized("Authorization code exchange failed", err)
	}

	var profile Profile
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&profile).
		Get(userinfoURL)
	if err != nil {
		return nil, errors.Internal("Failed to fetch Google profile", err)
	}
	if resp.IsError() {
		return nil, errors.Unauthorized("Google rejected the access token", nil)
	}
	if profile.Email == "" {
		return nil, errors.Internal("Google profile has no email", nil)
	}

	return &profile, nil
}
