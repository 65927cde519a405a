package models

import (
	"time"

	"github.com/google/uuid"
)

// An Asset is a file we have stored in external blob storage, currently just
// avatar images.
type Asset struct {
	ID         uuid.UUID  `db:"id"`
	S3Key      string     `db:"s3_key"`
	Filename   string     `db:"filename"`
	Size       int        `db:"size"`
	MimeType   string     `db:"mime_type"`
	Sha1Sum    string     `db:"sha1sum"`
	UploaderID *uuid.UUID `db:"uploader_id"`
	CreatedAt  time.Time  `db:"created_at"`
}
