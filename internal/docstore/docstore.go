package docstore

import (
	"bytes"
	"context"
	"fmt"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	docMimeType  = "application/vnd.google-apps.document"
	xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// SaveDoc creates an empty Google Doc in the shared drive, then inserts the
// full body at index 1 in a single batch update.
func (s *implStore) SaveDoc(ctx context.Context, title, body string) (string, error) {
	driveSvc, err := drive.NewService(ctx,
		option.WithCredentialsFile(s.credentialsFile),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return "", fmt.Errorf("create drive service: %w", err)
	}

	docsSvc, err := docs.NewService(ctx,
		option.WithCredentialsFile(s.credentialsFile),
		option.WithScopes(docs.DocumentsScope),
	)
	if err != nil {
		return "", fmt.Errorf("create docs service: %w", err)
	}

	meta := &drive.File{
		Name:     title,
		MimeType: docMimeType,
		Parents:  []string{s.sharedDriveID},
	}
	created, err := driveSvc.Files.Create(meta).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create document: %w", err)
	}

	req := &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{
			{
				InsertText: &docs.InsertTextRequest{
					Location: &docs.Location{Index: 1},
					Text:     body,
				},
			},
		},
	}
	if _, err := docsSvc.Documents.BatchUpdate(created.Id, req).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("insert document text: %w", err)
	}

	url := fmt.Sprintf("https://docs.google.com/document/d/%s/edit", created.Id)
	s.logger.Info(ctx, "Document saved: %s", url)
	return url, nil
}

// SaveRoster looks the roster file up by name in the roster folder (or the
// shared drive when no folder is configured) and updates it in place, or
// creates it when absent. Lookup is by filename, not a stable id; the
// create-or-update is intentionally not idempotent against renames.
func (s *implStore) SaveRoster(ctx context.Context, xlsx []byte) (string, error) {
	driveSvc, err := drive.NewService(ctx,
		option.WithCredentialsFile(s.credentialsFile),
		option.WithScopes(drive.DriveScope),
	)
	if err != nil {
		return "", fmt.Errorf("create drive service: %w", err)
	}

	folder := s.rosterFolderID
	if folder == "" {
		folder = s.sharedDriveID
	}

	query := fmt.Sprintf("name = '%s' and trashed = false", s.rosterFile)
	if folder != "" {
		query += fmt.Sprintf(" and '%s' in parents", folder)
	}

	list, err := driveSvc.Files.List().
		Q(query).
		Fields("files(id,name)").
		IncludeItemsFromAllDrives(true).
		SupportsAllDrives(true).
		PageSize(10).
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("find roster file: %w", err)
	}

	var fileID string
	if len(list.Files) > 0 {
		fileID = list.Files[0].Id
		_, err = driveSvc.Files.Update(fileID, &drive.File{}).
			Media(bytes.NewReader(xlsx), googleapi.ContentType(xlsxMimeType)).
			SupportsAllDrives(true).
			Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("update roster file: %w", err)
		}
	} else {
		meta := &drive.File{Name: s.rosterFile}
		if folder != "" {
			meta.Parents = []string{folder}
		}
		created, err := driveSvc.Files.Create(meta).
			Media(bytes.NewReader(xlsx), googleapi.ContentType(xlsxMimeType)).
			SupportsAllDrives(true).
			Fields("id").
			Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("create roster file: %w", err)
		}
		fileID = created.Id
	}

	url := fmt.Sprintf("https://drive.google.com/file/d/%s/view", fileID)
	s.logger.Info(ctx, "Roster saved: %s", url)
	return url, nil
}
