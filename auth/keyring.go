// Package auth provides a high-level API for persisting and retrieving user credentials from the system keyring.
package auth

import (
	"github.com/zalando/go-keyring"
)

const (
	service = "streamsan-cli"
	user    = "trakt-client-id"
)

// SetClientID persists the Trakt API client id to the system keyring.
func SetClientID(clientID string) error {
	return keyring.Set(service, user, clientID)
}

// GetClientID retrieves the Trakt API client id from the system keyring.
func GetClientID() (string, error) {
	return keyring.Get(service, user)
}

// DeleteClientID removes the Trakt API client id from the system keyring.
func DeleteClientID() error {
	return keyring.Delete(service, user)
}
