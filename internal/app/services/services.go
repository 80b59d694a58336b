package services

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/app/repositories"
	"github.com/hooplannedthis/api/internal/pkg/auth"
	"github.com/hooplannedthis/api/internal/pkg/filestorage"
)

// AdvisorStore is the advisor persistence used by the services
type AdvisorStore interface {
	List(ctx context.Context) ([]*models.Advisor, error)
	GetByID(ctx context.Context, id int64) (*models.Advisor, error)
	Create(ctx context.Context, a *models.Advisor) error
	Update(ctx context.Context, a *models.Advisor) error
	UpdatePhotoPath(ctx context.Context, id int64, path string) error
	Delete(ctx context.Context, id int64) error
}

// CouncilStore is the council persistence used by the services
type CouncilStore interface {
	List(ctx context.Context) ([]*models.Council, error)
	GetByGradYear(ctx context.Context, gradYear int) (*models.Council, error)
	ExistsByGradYear(ctx context.Context, gradYear int) (bool, error)
	Create(ctx context.Context, c *models.Council) error
	Update(ctx context.Context, gradYear int, patch models.CouncilPatch) (*models.Council, error)
}

// CommitteeStore is the committee persistence used by the services
type CommitteeStore interface {
	ListByGradYear(ctx context.Context, gradYear int) ([]*models.Committee, error)
	GetByID(ctx context.Context, id int64) (*models.Committee, error)
	Create(ctx context.Context, c *models.Committee) error
}

// MemberStore is the member persistence used by the services
type MemberStore interface {
	ListByGradYear(ctx context.Context, gradYear int) ([]*models.Member, error)
	ListByCommittee(ctx context.Context, committeeID int64) ([]*models.Member, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
	AssignCommittee(ctx context.Context, id uuid.UUID, committeeID int64, role string) error
	UpdateCommittee(ctx context.Context, id uuid.UUID, committeeID *int64) error
	UpdateRole(ctx context.Context, id uuid.UUID, role *string) error
	UpdateProfilePicture(ctx context.Context, id uuid.UUID, path string) error
	Upsert(ctx context.Context, m *models.Member) error
}

// EventStore is the event persistence used by the services
type EventStore interface {
	List(ctx context.Context) ([]*models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, e *models.Event) error
	Update(ctx context.Context, e *models.Event) error
	UpdateStatus(ctx context.Context, id int64, status models.EventStatus) error
	Delete(ctx context.Context, id int64) error
}

// ChangeNotifier tells connected clients that an entity changed
type ChangeNotifier interface {
	Publish(ctx context.Context, eventType, subject string, data interface{}) error
}

// FileUpload is an uploaded image handed to the services
type FileUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// Config holds the service-level settings
type Config struct {
	Bucket            string
	FallbackImage     string
	AdminPasswordHash string
}

// Services holds all the service instances
type Services struct {
	PhotoService      PhotoService
	AdvisorService    AdvisorService
	CouncilService    CouncilService
	CommitteeService  CommitteeService
	AssignmentService AssignmentService
	RoleBoardService  RoleBoardService
	EventService      EventService
	ProfileService    ProfileService
	AdminService      AdminService
}

// NewServices wires every service to the repositories
func NewServices(
	repos *repositories.Repositories,
	store filestorage.ObjectStore,
	notifier ChangeNotifier,
	jwtService *auth.JWTService,
	cfg Config,
	logger zerolog.Logger,
) *Services {
	changes := newChangePublisher(notifier, logger)
	photos := NewPhotoService(store, repos.AdvisorRepository, repos.MemberRepository, cfg.Bucket, cfg.FallbackImage)

	return &Services{
		PhotoService:      photos,
		AdvisorService:    NewAdvisorService(repos.AdvisorRepository, photos, changes),
		CouncilService:    NewCouncilService(repos.CouncilRepository, photos, changes),
		CommitteeService:  NewCommitteeService(repos.CommitteeRepository, repos.CouncilRepository, changes),
		AssignmentService: NewAssignmentService(repos.CommitteeRepository, repos.MemberRepository, photos, changes),
		RoleBoardService:  NewRoleBoardService(repos.CommitteeRepository, repos.MemberRepository, changes),
		EventService:      NewEventService(repos.EventRepository, changes),
		ProfileService:    NewProfileService(repos.MemberRepository, repos.CommitteeRepository, photos, changes),
		AdminService:      NewAdminService(jwtService, cfg.AdminPasswordHash),
	}
}

// changePublisher publishes change events after a successful mutation. A
// failed publish is logged; the mutation itself already succeeded.
type changePublisher struct {
	notifier ChangeNotifier
	logger   zerolog.Logger
}

func newChangePublisher(notifier ChangeNotifier, logger zerolog.Logger) *changePublisher {
	return &changePublisher{notifier: notifier, logger: logger}
}

func (p *changePublisher) publish(ctx context.Context, eventType, subject string, data interface{}) {
	if p == nil || p.notifier == nil {
		return
	}
	if err := p.notifier.Publish(ctx, eventType, subject, data); err != nil {
		p.logger.Warn().Err(err).Str("type", eventType).Str("subject", subject).Msg("Failed to publish change event")
	}
}
