// Package trakt provides a client for the Trakt metadata catalog REST API.
package trakt

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spf13/viper"
	"github.com/streamsan-cli/streamsan/auth"
	"github.com/streamsan-cli/streamsan/constant"
	"github.com/streamsan-cli/streamsan/key"
	"github.com/streamsan-cli/streamsan/network"
)

// apiEndpoint and httpClient are variables so tests can point the package at a stub server.
var (
	apiEndpoint = "https://api.trakt.tv"
	httpClient  = network.Client
)

// ErrNoClientID indicates that no Trakt API client id could be resolved.
var ErrNoClientID = errors.New("trakt client id not configured (set trakt.client_id or store one with `streamsan auth`)")

// clientID resolves the static API key: configuration first, system keyring second.
func clientID() (string, error) {
	if id := viper.GetString(key.TraktClientID); id != "" {
		return id, nil
	}

	if id, err := auth.GetClientID(); err == nil && id != "" {
		return id, nil
	}

	return "", ErrNoClientID
}

// apiRequest performs a GET against the catalog with the mandatory Trakt headers.
func apiRequest(path string, params url.Values) (*http.Response, error) {
	id, err := clientID()
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(apiEndpoint + path)
	if err != nil {
		return nil, fmt.Errorf("trakt url: %w", err)
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("trakt-api-version", "2")
	req.Header.Set("trakt-api-key", id)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trakt api request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("trakt api: status %d", resp.StatusCode)
	}

	return resp, nil
}
