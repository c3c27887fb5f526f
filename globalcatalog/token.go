package globalcatalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-http-utils/headers"
	"github.com/go-resty/resty/v2"
)

const apikeyGrantType = "urn:ibm:params:oauth:grant-type:apikey"

// IAMTokenProvider exchanges a long lived API key for a short lived bearer
// token via the identity endpoint's apikey grant. Tokens are not cached: each
// catalog request re-authenticates, a simplicity choice rather than a
// performance optimization. Retry policy, if any, belongs to the caller.
type IAMTokenProvider struct {
	tokenURL string
	apiKey   string
	rest     *resty.Client
}

func NewIAMTokenProvider(tokenURL, apiKey string) (*IAMTokenProvider, error) {
	if tokenURL == "" {
		return nil, errors.New("identity token URL must not be empty")
	}
	if apiKey == "" {
		return nil, errors.New("IAM API key must not be empty")
	}

	return &IAMTokenProvider{
		tokenURL: tokenURL,
		apiKey:   apiKey,
		rest:     resty.New(),
	}, nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (p *IAMTokenProvider) ObtainToken(ctx context.Context) (string, error) {
	var tokenResp tokenResponse
	resp, err := p.rest.R().
		SetContext(ctx).
		SetHeader(headers.ContentType, "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"grant_type": apikeyGrantType,
			"apikey":     p.apiKey,
		}).
		SetResult(&tokenResp).
		Post(p.tokenURL)
	if err != nil {
		return "", fmt.Errorf("identity token request failed: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("identity token request failed with status code: %d", resp.StatusCode())
	}

	if tokenResp.AccessToken == "" {
		return "", errors.New("access token not found in identity response")
	}

	return tokenResp.AccessToken, nil
}
