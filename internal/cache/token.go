package cache

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExpiresFormat is the timestamp layout used for the expires field of
// cached token documents. It carries no zone; values are local time.
const ExpiresFormat = "2006-01-02T15:04:05"

// expiryLeeway pads the expiry check to cover requests made right
// before the deadline.
const expiryLeeway = 10 * time.Second

// Token is the document stored, base64 encoded, in a
// spotify.<identifier>.token cache file.
type Token struct {
	AccessToken  string
	TokenType    string
	Scopes       []string
	RefreshToken *string
	Expires      time.Time
}

type tokenDocument struct {
	AccessToken  string   `json:"access_token"`
	TokenType    string   `json:"token_type"`
	Scopes       []string `json:"scopes"`
	RefreshToken *string  `json:"refresh_token"`
	Expires      string   `json:"expires"`
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(tokenDocument{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		Scopes:       t.Scopes,
		RefreshToken: t.RefreshToken,
		Expires:      t.Expires.Format(ExpiresFormat),
	})
}

func (t *Token) UnmarshalJSON(data []byte) error {
	var doc tokenDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	expires, err := time.ParseInLocation(ExpiresFormat, doc.Expires, time.Local)
	if err != nil {
		return fmt.Errorf("invalid expires timestamp %q: %s", doc.Expires, err)
	}

	*t = Token{
		AccessToken:  doc.AccessToken,
		TokenType:    doc.TokenType,
		Scopes:       doc.Scopes,
		RefreshToken: doc.RefreshToken,
		Expires:      expires,
	}
	return nil
}

// IsExpired reports whether the token has expired or will within the
// leeway window.
func (t Token) IsExpired() bool {
	return time.Now().Add(expiryLeeway).After(t.Expires)
}

// Header returns the Authorization header value for the token, e.g.
// `Bearer 1POdFZRZbvb...qqillRxMr2z`.
func (t Token) Header() string {
	return fmt.Sprintf("%s %s", t.TokenType, t.AccessToken)
}
