package gdocs

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"

	"github.com/guest-labels/guest-labels/guests"
)

// Share is the collaborator granted access to a new labels document.
type Share struct {
	Email string
	Role  string
}

// Publisher creates, populates and shares a labels document.
type Publisher struct {
	Docs  *docs.Service
	Drive *drive.Service
	Log   *zap.Logger
}

// URL returns the edit URL for a Google Docs document.
func URL(id string) string {
	return fmt.Sprintf("https://docs.google.com/document/d/%s/edit", id)
}

// Create creates a new empty document and returns the document ID.
func Create(ctx context.Context, gdocs *docs.Service, title string) (string, error) {
	doc, err := gdocs.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create document (%w)", err)
	}

	return doc.DocumentId, nil
}

// Populate inserts a label table for each recipient into the document, as a single
// batch update starting at the top of the document body.
func Populate(ctx context.Context, gdocs *docs.Service, id string, recipients []guests.Recipient) error {
	requests, _ := Requests(recipients, Start())

	rq := docs.BatchUpdateDocumentRequest{
		Requests: requests,
	}

	if _, err := gdocs.Documents.BatchUpdate(id, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to update document %v (%w)", id, err)
	}

	return nil
}

// ShareWith grants a user access to the document.
func ShareWith(ctx context.Context, gdrive *drive.Service, id string, share Share) error {
	permission := drive.Permission{
		Type:         "user",
		Role:         share.Role,
		EmailAddress: share.Email,
	}

	if _, err := gdrive.Permissions.Create(id, &permission).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to share document %v with %v (%w)", id, share.Email, err)
	}

	return nil
}

// Publish creates a new document with one label table per recipient and shares it
// with the collaborator. Errors are logged and return an empty document ID.
func (p *Publisher) Publish(ctx context.Context, title string, recipients []guests.Recipient, share Share) string {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}

	if len(recipients) == 0 {
		log.Info("no recipients, document not created")
		return ""
	}

	id, err := Create(ctx, p.Docs, title)
	if err != nil {
		log.Error("an error occurred", zap.Error(err))
		return ""
	}

	log.Debug("created document", zap.String("id", id), zap.String("title", title))

	if err := Populate(ctx, p.Docs, id, recipients); err != nil {
		log.Error("an error occurred", zap.Error(err))
		return ""
	}

	log.Info("added labels", zap.String("id", id), zap.Int("labels", len(recipients)))

	if share.Email == "" {
		log.Warn("no collaborator configured, document not shared", zap.String("id", id))
		return id
	}

	if err := ShareWith(ctx, p.Drive, id, share); err != nil {
		log.Error("an error occurred", zap.Error(err))
		return ""
	}

	log.Info("shared document", zap.String("id", id), zap.String("email", share.Email), zap.String("role", share.Role))

	return id
}
