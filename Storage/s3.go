package Storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	appconfig "github.com/Hpoinseaux/Assmatapp/config"
)

// S3Drive stores tables as CSV objects at the bucket root and folders as key
// prefixes. Works against AWS or any S3-compatible endpoint (MinIO).
type S3Drive struct {
	client *s3.Client
	bucket string
}

// NewS3Drive builds a drive from static credentials and an optional custom
// endpoint.
func NewS3Drive(cfg *appconfig.Config) (*S3Drive, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Drive{client: client, bucket: cfg.S3Bucket}, nil
}

func (d *S3Drive) GetTable(ctx context.Context, name string) (Table, error) {
	out, err := d.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &d.bucket,
		Key:    &name,
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return Table{}, nil
		}
		return Table{}, fmt.Errorf("%w: get %s: %v", ErrStorageUnavailable, name, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return Table{}, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, name, err)
	}
	return DecodeTable(data)
}

func (d *S3Drive) PutTable(ctx context.Context, name string, t Table) error {
	data, err := EncodeTable(t)
	if err != nil {
		return err
	}
	_, err = d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &d.bucket,
		Key:         &name,
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("%w: put %s: %v", ErrStorageUnavailable, name, err)
	}
	return nil
}

// GetOrCreateFolder returns the prefix for a named folder. S3 has no real
// folders, so lookup and creation are the same idempotent operation.
func (d *S3Drive) GetOrCreateFolder(ctx context.Context, name string) (string, error) {
	return strings.TrimSuffix(name, "/") + "/", nil
}

func (d *S3Drive) ListFiles(ctx context.Context, folder string) ([]FileInfo, error) {
	out, err := d.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: &d.bucket,
		Prefix: &folder,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ErrStorageUnavailable, folder, err)
	}

	var files []FileInfo
	for _, obj := range out.Contents {
		key := aws.ToString(obj.Key)
		if key == folder {
			continue
		}
		files = append(files, FileInfo{ID: key, Name: path.Base(key)})
	}
	return files, nil
}

func (d *S3Drive) UploadFile(ctx context.Context, folder, name string, data []byte, mimeType string) (string, error) {
	key := folder + name
	_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &d.bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: upload %s: %v", ErrStorageUnavailable, key, err)
	}
	return key, nil
}

func (d *S3Drive) DownloadFile(ctx context.Context, id string) ([]byte, error) {
	out, err := d.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &d.bucket,
		Key:    &id,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: download %s: %v", ErrStorageUnavailable, id, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}
