package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/logger"
)

// LocalStorage stores objects on the local filesystem under basePath/<bucket>/<path>.
type LocalStorage struct {
	basePath string // root directory for all buckets
	baseURL  string // URL prefix the root directory is served under
}

// NewLocalStorage creates a new LocalStorage instance.
// basePath is the directory on the server; baseURL is the URL prefix it is
// served from (for example http://localhost:8080/uploads).
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// cleanObjectPath normalizes bucket/objectPath and rejects paths escaping the bucket.
func cleanObjectPath(bucket, objectPath string) (string, error) {
	if bucket == "" || strings.ContainsAny(bucket, `/\`) || bucket == "." || bucket == ".." {
		return "", fmt.Errorf("%w: invalid bucket %q", apperrors.ErrValidationFailed, bucket)
	}
	cleaned := path.Clean("/" + strings.ReplaceAll(objectPath, `\`, "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return "", fmt.Errorf("%w: empty object path", apperrors.ErrValidationFailed)
	}
	return path.Join(bucket, cleaned), nil
}

// Upload writes the object, creating intermediate directories.
func (ls *LocalStorage) Upload(ctx context.Context, bucket, objectPath string, content io.Reader, opts UploadOptions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, err := cleanObjectPath(bucket, objectPath)
	if err != nil {
		return err
	}
	dstPath := filepath.Join(ls.basePath, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create object directory")
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !opts.Upsert {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	dst, err := os.OpenFile(dstPath, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", apperrors.ErrObjectExists, rel)
		}
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create object file")
		return fmt.Errorf("failed to create object file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to write object content")
		_ = os.Remove(dstPath)
		return fmt.Errorf("failed to write object content: %w", err)
	}

	logger.Debug().
		Str("object", rel).
		Str("contentType", opts.ContentType).
		Bool("upsert", opts.Upsert).
		Msg("Object stored")
	return nil
}

// PublicURL builds the URL the object is served under.
func (ls *LocalStorage) PublicURL(bucket, objectPath string) string {
	rel, err := cleanObjectPath(bucket, objectPath)
	if err != nil {
		return ""
	}
	if ls.baseURL == "" {
		return "/uploads/" + rel
	}
	return ls.baseURL + "/" + rel
}

// Remove deletes the object. Missing objects are ignored.
func (ls *LocalStorage) Remove(ctx context.Context, bucket, objectPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rel, err := cleanObjectPath(bucket, objectPath)
	if err != nil {
		return err
	}
	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(rel))

	if err := os.Remove(physicalPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn().Str("path", physicalPath).Msg("Object to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete object")
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}
