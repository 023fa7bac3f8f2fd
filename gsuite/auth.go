package gsuite

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/context"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	SHEETS = "https://www.googleapis.com/auth/spreadsheets.readonly"
	DOCS   = "https://www.googleapis.com/auth/documents"
	DRIVE  = "https://www.googleapis.com/auth/drive.file"
)

// Scopes are the OAuth2 scopes required by the label commands.
var Scopes = []string{SHEETS, DOCS, DRIVE}

// ErrNotAuthorised is returned for OAuth2 client credentials without a cached token.
var ErrNotAuthorised = errors.New("not authorised - run 'authorise' to create a token file")

// Authorize returns an HTTP client authorised with the credentials file. Service
// account credentials are used as is, OAuth2 client credentials use the token
// previously saved to the tokens directory by Authorise.
func Authorize(ctx context.Context, credentials, tokens string, scopes ...string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	if isServiceAccount(b) {
		config, err := google.JWTConfigFromJSON(b, scopes...)
		if err != nil {
			return nil, err
		}

		return config.Client(ctx), nil
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, err
	}

	token, err := tokenFromFile(TokensFile(credentials, tokens))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotAuthorised
	} else if err != nil {
		return nil, err
	}

	return config.Client(ctx, token), nil
}

// Authorise runs the OAuth2 'installed application' flow for client credentials:
// it prints the consent URL, reads the authorisation code and saves the token.
func Authorise(ctx context.Context, credentials, tokens string, in io.Reader, out io.Writer, scopes ...string) error {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return err
	}

	if isServiceAccount(b) {
		return fmt.Errorf("%v is a service account key and does not need authorisation", credentials)
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return err
	}

	token, err := getTokenFromWeb(ctx, config, in, out)
	if err != nil {
		return err
	}

	file := TokensFile(credentials, tokens)
	fmt.Fprintf(out, "Saving credential file to: %s\n", file)

	return saveToken(file, token)
}

// TokensFile returns the path of the cached OAuth2 token for a credentials file
// e.g. <tokens>/credentials.tokens.
func TokensFile(credentials, tokens string) string {
	dir, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))

	if tokens != "" {
		dir = tokens
	}

	return filepath.Join(dir, fmt.Sprintf("%s.tokens", name))
}

func isServiceAccount(b []byte) bool {
	var key struct {
		Type string `json:"type"`
	}

	return json.Unmarshal(b, &key) == nil && key.Type == "service_account"
}

// Request a token from the web, then returns the retrieved token.
func getTokenFromWeb(ctx context.Context, config *oauth2.Config, in io.Reader, out io.Writer) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(out, "Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL)

	var authCode string
	if _, err := fmt.Fscan(in, &authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code (%w)", err)
	}

	token, err := config.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web (%w)", err)
	}

	return token, nil
}

// Retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(token)

	return token, err
}

// Saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token (%w)", err)
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
