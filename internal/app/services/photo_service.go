package services

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/filestorage"
	"github.com/hooplannedthis/api/internal/pkg/helpers"
)

// Namespace selects where an image is stored and which record it is linked to
type Namespace string

const (
	NamespaceAdvisors Namespace = "advisors"
	NamespaceMembers  Namespace = "members"
	NamespaceCouncils Namespace = "councils"
)

const (
	defaultImageExt   = "png"
	imageCacheControl = "3600"
)

// UploadResult is the stored path of an upload and its public URL
type UploadResult struct {
	Path      string
	PublicURL string
}

// PhotoService resolves and stores advisor photos, member profile pictures
// and council logos
type PhotoService interface {
	// ResolveDisplayURL returns fallback for a missing path, otherwise the
	// public URL of the stored object
	ResolveDisplayURL(path *string, fallback string) string
	// FallbackImage is the configured placeholder image
	FallbackImage() string
	// UploadAndLink stores file under the owner's namespace and records the
	// path on the owning row. Councils have no link step.
	UploadAndLink(ctx context.Context, ns Namespace, ownerID string, file *FileUpload) (*UploadResult, error)
}

type advisorPhotoLinker interface {
	UpdatePhotoPath(ctx context.Context, id int64, path string) error
}

type memberPhotoLinker interface {
	UpdateProfilePicture(ctx context.Context, id uuid.UUID, path string) error
}

type photoServiceImpl struct {
	store    filestorage.ObjectStore
	advisors advisorPhotoLinker
	members  memberPhotoLinker
	bucket   string
	fallback string
	now      func() time.Time
}

// NewPhotoService creates a new photo service instance
func NewPhotoService(store filestorage.ObjectStore, advisors advisorPhotoLinker, members memberPhotoLinker, bucket, fallback string) PhotoService {
	return &photoServiceImpl{
		store:    store,
		advisors: advisors,
		members:  members,
		bucket:   bucket,
		fallback: fallback,
		now:      time.Now,
	}
}

func (s *photoServiceImpl) ResolveDisplayURL(objectPath *string, fallback string) string {
	if objectPath == nil || strings.TrimSpace(*objectPath) == "" {
		return fallback
	}
	return s.store.PublicURL(s.bucket, *objectPath)
}

func (s *photoServiceImpl) FallbackImage() string {
	return s.fallback
}

// ImageExt returns the lowercased text after the last dot of name, or png
func ImageExt(name string) string {
	i := strings.LastIndex(name, ".")
	if i < 0 || i == len(name)-1 {
		return defaultImageExt
	}
	ext := strings.ToLower(name[i+1:])
	if strings.ContainsAny(ext, "/\\") {
		return defaultImageExt
	}
	return ext
}

// ObjectPath builds <namespace(owner)>/<unix millis>.<ext>
func ObjectPath(ns Namespace, ownerID, filename string, at time.Time) string {
	name := helpers.UnixMillis(at) + "." + ImageExt(filename)
	switch ns {
	case NamespaceMembers:
		return path.Join(ownerID, name)
	default:
		return path.Join(string(ns), ownerID, name)
	}
}

// linkFunc returns the step that records path on the owner, or nil
func (s *photoServiceImpl) linkFunc(ns Namespace, ownerID string) (func(ctx context.Context, path string) error, error) {
	switch ns {
	case NamespaceAdvisors:
		id, err := strconv.ParseInt(ownerID, 10, 64)
		if err != nil || id <= 0 {
			return nil, apperrors.NewValidationError("Invalid advisor ID.")
		}
		return func(ctx context.Context, p string) error {
			return s.advisors.UpdatePhotoPath(ctx, id, p)
		}, nil
	case NamespaceMembers:
		id, err := uuid.Parse(ownerID)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid member ID.")
		}
		return func(ctx context.Context, p string) error {
			return s.members.UpdateProfilePicture(ctx, id, p)
		}, nil
	case NamespaceCouncils:
		if _, err := strconv.Atoi(ownerID); err != nil {
			return nil, apperrors.NewValidationError("Invalid graduation year.")
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown photo namespace %q", apperrors.ErrValidationFailed, ns)
	}
}

func (s *photoServiceImpl) UploadAndLink(ctx context.Context, ns Namespace, ownerID string, file *FileUpload) (*UploadResult, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, apperrors.NewValidationError("Missing owner ID for photo upload.")
	}
	if file == nil || file.Content == nil {
		return nil, apperrors.NewValidationError("No image file provided.")
	}

	link, err := s.linkFunc(ns, ownerID)
	if err != nil {
		return nil, err
	}

	objectPath := ObjectPath(ns, ownerID, file.Filename, s.now())
	err = s.store.Upload(ctx, s.bucket, objectPath, file.Content, filestorage.UploadOptions{
		ContentType:  file.ContentType,
		CacheControl: imageCacheControl,
		Upsert:       true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	if link != nil {
		if err := link(ctx, objectPath); err != nil {
			return nil, fmt.Errorf("failed to link image: %w", err)
		}
	}

	return &UploadResult{
		Path:      objectPath,
		PublicURL: s.store.PublicURL(s.bucket, objectPath),
	}, nil
}
