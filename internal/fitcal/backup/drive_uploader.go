package backup

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/2beens/fitcal/internal/telemetry/tracing"
)

const (
	DefaultDriveFolder = "fitcal-backup"
	folderMimeType     = "application/vnd.google-apps.folder"
)

// NewDriveService creates a drive client from service account credentials.
// Outgoing requests are traced.
func NewDriveService(ctx context.Context, credentialsJSON []byte) (*drive.Service, error) {
	// https://github.com/googleapis/google-api-go-client/blob/master/drive/v3/drive-gen.go
	tracedClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, tracedClient)

	creds, err := google.CredentialsFromJSON(ctx, credentialsJSON, drive.DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("parse drive credentials: %w", err)
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, creds.TokenSource)))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}
	return driveService, nil
}

// DriveUploader stores backup files in a single drive folder, creating the
// folder on first use.
type DriveUploader struct {
	service    *drive.Service
	folderName string
	folderID   string
}

func NewDriveUploader(service *drive.Service, folderName string) *DriveUploader {
	if folderName == "" {
		folderName = DefaultDriveFolder
	}
	return &DriveUploader{
		service:    service,
		folderName: folderName,
	}
}

func (u *DriveUploader) Upload(ctx context.Context, fileName string, content []byte) (_ string, err error) {
	ctx, span := tracing.GlobalBackupTracer.Start(ctx, "backup.drive.upload")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	folderID, err := u.ensureFolder(ctx)
	if err != nil {
		return "", err
	}

	fileMeta := &drive.File{
		Name: fileName,
		// https://developers.google.com/drive/api/v3/mime-types
		MimeType: "application/json",
		Parents:  []string{folderID},
	}
	created, err := u.service.
		Files.Create(fileMeta).
		Fields("id, parents").
		Media(bytes.NewReader(content)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("%s: create backup file: %w", fileName, err)
	}

	log.Printf("backup file [%s] saved to drive: %s", fileName, created.Id)
	return created.Id, nil
}

func (u *DriveUploader) ensureFolder(ctx context.Context) (string, error) {
	if u.folderID != "" {
		return u.folderID, nil
	}

	query := fmt.Sprintf("mimeType = '%s' and trashed = false and name = '%s'", folderMimeType, u.folderName)
	found, err := u.service.
		Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("list backup folders: %w", err)
	}

	switch {
	case len(found.Files) == 1:
		u.folderID = found.Files[0].Id
	case len(found.Files) > 1:
		log.Warnf("found %d backup folders named [%s], using the first one", len(found.Files), u.folderName)
		u.folderID = found.Files[0].Id
	default:
		log.Printf("backup folder [%s] not found, creating it", u.folderName)
		folder, err := u.service.
			Files.Create(&drive.File{Name: u.folderName, MimeType: folderMimeType}).
			Fields("id").
			Context(ctx).
			Do()
		if err != nil {
			return "", fmt.Errorf("create backup folder: %w", err)
		}
		u.folderID = folder.Id
	}

	return u.folderID, nil
}
