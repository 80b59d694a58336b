package filestorage

import (
	"context"
	"io"
)

// UploadOptions control how an object is written
type UploadOptions struct {
	ContentType  string
	CacheControl string
	// Upsert overwrites an existing object at the same path instead of failing
	Upsert bool
}

// ObjectStore is the bucket/path object storage used for photos and logos
type ObjectStore interface {
	// Upload writes content to bucket/objectPath
	Upload(ctx context.Context, bucket, objectPath string, content io.Reader, opts UploadOptions) error

	// PublicURL returns the publicly fetchable URL of an object. It does not
	// check that the object exists.
	PublicURL(bucket, objectPath string) string

	// Remove deletes an object; removing a missing object is not an error
	Remove(ctx context.Context, bucket, objectPath string) error
}
