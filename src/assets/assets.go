package assets

import (
	"bytes"
	"context"
	"crypto/sha1"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/smartchessacademy/website/src/config"
	"github.com/smartchessacademy/website/src/db"
	"github.com/smartchessacademy/website/src/models"
	"github.com/smartchessacademy/website/src/oops"
)

var ErrStorageDisabled = errors.New("asset storage is not configured")

var clientOnce sync.Once
var client *s3.Client

func s3Client() *s3.Client {
	clientOnce.Do(func() {
		if !config.Config.AvatarsEnabled() {
			return
		}
		cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(
					config.Config.Storage.Key,
					config.Config.Storage.Secret,
					"",
				),
			),
			awsconfig.WithRegion(config.Config.Storage.Region),
			awsconfig.WithEndpointResolver(aws.EndpointResolverFunc(func(service, region string) (aws.Endpoint, error) {
				return aws.Endpoint{
					URL: config.Config.Storage.Endpoint,
				}, nil
			})),
		)
		if err != nil {
			panic(err)
		}
		client = s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	})
	return client
}

type CreateInput struct {
	Content     []byte
	Filename    string
	ContentType string

	// Optional params
	UploaderID *uuid.UUID
}

var REIllegalFilenameChars = regexp.MustCompile(`[^\w\-.]`)

func SanitizeFilename(filename string) string {
	if filename == "" {
		return "unnamed"
	}
	return REIllegalFilenameChars.ReplaceAllString(filename, "_")
}

func AssetKey(id, filename string) string {
	return fmt.Sprintf("%s/%s", id, filename)
}

type InvalidAssetError error

// Create uploads the file to the storage bucket and records it in the
// asset table.
func Create(ctx context.Context, dbConn db.ConnOrTx, in CreateInput) (*models.Asset, error) {
	s3c := s3Client()
	if s3c == nil {
		return nil, ErrStorageDisabled
	}

	filename := SanitizeFilename(in.Filename)

	if len(in.Content) == 0 {
		return nil, InvalidAssetError(fmt.Errorf("could not upload asset '%s': no bytes of data were provided", filename))
	}
	if in.ContentType == "" {
		return nil, InvalidAssetError(fmt.Errorf("could not upload asset '%s': no content type provided", filename))
	}

	id := uuid.New()
	key := AssetKey(id.String(), filename)
	checksum := fmt.Sprintf("%x", sha1.Sum(in.Content))

	upload := func() error {
		_, err := s3c.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      &config.Config.Storage.Bucket,
			Key:         &key,
			Body:        bytes.NewReader(in.Content),
			ACL:         types.ObjectCannedACLPublicRead,
			ContentType: &in.ContentType,
		})
		return err
	}

	err := upload()
	if err != nil {
		var apiError smithy.APIError
		if errors.As(err, &apiError) && apiError.ErrorCode() == "NoSuchBucket" {
			_, err := s3c.CreateBucket(ctx, &s3.CreateBucketInput{
				Bucket: &config.Config.Storage.Bucket,
			})
			if err != nil {
				return nil, oops.New(err, "failed to create assets bucket")
			}

			err = upload()
			if err != nil {
				return nil, oops.New(err, "failed to upload asset")
			}
		} else {
			return nil, oops.New(err, "failed to upload asset")
		}
	}

	asset, err := db.QueryOne[models.Asset](ctx, dbConn,
		`
		INSERT INTO asset (id, s3_key, filename, size, mime_type, sha1sum, uploader_id)
		VALUES            ($1, $2,     $3,       $4,   $5,        $6,      $7)
		RETURNING $columns
		`,
		id,
		key,
		filename,
		len(in.Content),
		in.ContentType,
		checksum,
		in.UploaderID,
	)
	if err != nil {
		return nil, oops.New(err, "failed to save asset record")
	}

	return asset, nil
}
