// Package source resolves test-data locations to local files. Plain
// paths pass through unchanged; s3:// URIs are downloaded to a
// temporary file first.
package source

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

const s3Prefix = "s3://"

// Downloader is the subset of the AWS download manager used by Fetcher.
type Downloader interface {
	Download(io.WriterAt, *s3.GetObjectInput, ...func(*s3manager.Downloader)) (int64, error)
}

type Fetcher struct {
	Logger *slog.Logger

	dl Downloader
}

// NewFetcher builds a Fetcher backed by the ambient AWS session.
// Credentials and region come from the environment, as usual for the
// SDK.
func NewFetcher() *Fetcher {
	sess := session.Must(session.NewSession())
	return &Fetcher{dl: s3manager.NewDownloader(sess)}
}

// Fetch makes path available on the local filesystem and returns the
// local path. For s3://bucket/key URIs the object is downloaded to a
// temporary file; cleanup removes it. For anything else the path is
// returned as-is and cleanup is a no-op. cleanup is never nil.
func (f *Fetcher) Fetch(path string) (string, func(), error) {
	noop := func() {}

	if !strings.HasPrefix(path, s3Prefix) {
		return path, noop, nil
	}

	bucket, key, err := splitS3(path)
	if err != nil {
		return "", noop, err
	}

	tmp, err := os.CreateTemp("", "source-*.csv")
	if err != nil {
		return "", noop, fmt.Errorf("source: create temp file: %w", err)
	}

	n, err := f.dl.Download(tmp, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	closeErr := tmp.Close()
	if err != nil {
		_ = os.Remove(tmp.Name())
		return "", noop, fmt.Errorf("source: download %s: %w", path, err)
	}
	if closeErr != nil {
		_ = os.Remove(tmp.Name())
		return "", noop, fmt.Errorf("source: close temp file: %w", closeErr)
	}

	f.logger().Info("file downloaded", "path", path, "bytes", n)
	return tmp.Name(), func() { _ = os.Remove(tmp.Name()) }, nil
}

func (f *Fetcher) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.Default()
}

func splitS3(uri string) (bucket, key string, err error) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(uri, s3Prefix), "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("source: invalid s3 uri %q", uri)
	}
	return bucket, key, nil
}
