// Package auth computes stream authorization credentials and performs the URL-signing exchange.
package auth

import (
	"github.com/zalando/go-keyring"
)

const (
	service = "leaguecast-cli"
	user    = "media-auth-token"
)

// SetToken persists the external media auth token to the system keyring.
func SetToken(token string) error {
	return keyring.Set(service, user, token)
}

// GetToken retrieves the external media auth token from the system keyring.
func GetToken() (string, error) {
	return keyring.Get(service, user)
}

// DeleteToken removes the external media auth token from the system keyring.
func DeleteToken() error {
	return keyring.Delete(service, user)
}
