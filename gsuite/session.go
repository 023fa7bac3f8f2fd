package gsuite

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Session holds the authorised Google API clients for a single run.
type Session struct {
	Client *http.Client
	Sheets *sheets.Service
	Docs   *docs.Service
	Drive  *drive.Service
}

// NewSession authorises with the credentials file and creates the Sheets, Docs and
// Drive clients.
func NewSession(ctx context.Context, credentials, tokens string) (*Session, error) {
	client, err := Authorize(ctx, credentials, tokens, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	return NewSessionWithClient(ctx, client)
}

// NewSessionWithClient creates the API clients using an existing authorised HTTP
// client. Any additional options (e.g. an endpoint) are applied to all clients.
func NewSessionWithClient(ctx context.Context, client *http.Client, opts ...option.ClientOption) (*Session, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)

	gsheets, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	gdocs, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Docs client (%w)", err)
	}

	gdrive, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%w)", err)
	}

	return &Session{
		Client: client,
		Sheets: gsheets,
		Docs:   gdocs,
		Drive:  gdrive,
	}, nil
}
