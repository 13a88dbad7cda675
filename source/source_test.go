package source

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type fakeDownloader struct {
	payload string
	err     error
	input   *s3.GetObjectInput
}

func (f *fakeDownloader) Download(w io.WriterAt, in *s3.GetObjectInput, _ ...func(*s3manager.Downloader)) (int64, error) {
	f.input = in
	if f.err != nil {
		return 0, f.err
	}
	n, err := w.WriteAt([]byte(f.payload), 0)
	return int64(n), err
}

func TestFetch_LocalPassthrough(t *testing.T) {
	f := &Fetcher{dl: &fakeDownloader{}}
	local, cleanup, err := f.Fetch("testdata/leads.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer cleanup()
	if local != "testdata/leads.csv" {
		t.Errorf("expected path to pass through, but got %s", local)
	}
}

func TestFetch_S3(t *testing.T) {
	dl := &fakeDownloader{payload: "a,b\n1,2\n"}
	f := &Fetcher{dl: dl}

	local, cleanup, err := f.Fetch("s3://bucket/dir/leads.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(local)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "a,b\n1,2\n" {
		t.Errorf("expected downloaded content, but got %q", string(data))
	}
	if *dl.input.Bucket != "bucket" {
		t.Errorf("expected bucket 'bucket', but got %s", *dl.input.Bucket)
	}
	if *dl.input.Key != "dir/leads.csv" {
		t.Errorf("expected key 'dir/leads.csv', but got %s", *dl.input.Key)
	}

	cleanup()
	if _, err := os.Stat(local); !os.IsNotExist(err) {
		t.Errorf("expected cleanup to remove %s, but got %v", local, err)
	}
}

func TestFetch_S3Error(t *testing.T) {
	f := &Fetcher{dl: &fakeDownloader{err: errors.New("no such key")}}
	_, _, err := f.Fetch("s3://bucket/missing.csv")
	if err == nil {
		t.Fatal("expected error, but got nil")
	}
}

func TestSplitS3(t *testing.T) {
	tests := []struct {
		uri     string
		bucket  string
		key     string
		wantErr bool
	}{
		{uri: "s3://bucket/key.csv", bucket: "bucket", key: "key.csv"},
		{uri: "s3://bucket/dir/key.csv", bucket: "bucket", key: "dir/key.csv"},
		{uri: "s3://bucket", wantErr: true},
		{uri: "s3://bucket/", wantErr: true},
		{uri: "s3:///key.csv", wantErr: true},
	}
	for _, tt := range tests {
		bucket, key, err := splitS3(tt.uri)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, but got nil", tt.uri)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tt.uri, err)
			continue
		}
		if bucket != tt.bucket || key != tt.key {
			t.Errorf("%s: expected %s/%s, but got %s/%s", tt.uri, tt.bucket, tt.key, bucket, key)
		}
	}
}
