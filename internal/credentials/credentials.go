package credentials

import (
	"encoding/base64"
	"fmt"

	envstruct "code.cloudfoundry.org/go-envstruct"
)

// Credentials are the spotify client credentials, read from TUPY_
// prefixed environment variables.
type Credentials struct {
	ClientID     string `env:"TUPY_CLIENT_ID, required, report"`
	ClientSecret string `env:"TUPY_CLIENT_SECRET"`
}

func Load() (Credentials, error) {
	var c Credentials
	if err := envstruct.Load(&c); err != nil {
		return Credentials{}, err
	}
	return c, nil
}

// Auth returns the base64 client_id:client_secret pair used for basic
// authorization.
func (c Credentials) Auth() string {
	pair := fmt.Sprintf("%s:%s", c.ClientID, c.ClientSecret)
	return base64.StdEncoding.EncodeToString([]byte(pair))
}
