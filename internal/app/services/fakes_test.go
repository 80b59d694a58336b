package services

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hooplannedthis/api/internal/app/models"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
	"github.com/hooplannedthis/api/internal/pkg/filestorage"
)

// In-memory stores standing in for the repositories.

type fakeAdvisorStore struct {
	mu       sync.Mutex
	nextID   int64
	advisors map[int64]*models.Advisor
	calls    int
	failOn   map[string]error
}

func newFakeAdvisorStore() *fakeAdvisorStore {
	return &fakeAdvisorStore{advisors: map[int64]*models.Advisor{}, failOn: map[string]error{}}
}

func (f *fakeAdvisorStore) List(ctx context.Context) ([]*models.Advisor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	out := []*models.Advisor{}
	for _, a := range f.advisors {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeAdvisorStore) GetByID(ctx context.Context, id int64) (*models.Advisor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	a, ok := f.advisors[id]
	if !ok {
		return nil, apperrors.ErrAdvisorNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdvisorStore) Create(ctx context.Context, a *models.Advisor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err := f.failOn["Create"]; err != nil {
		return err
	}
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.advisors[a.ID] = &cp
	return nil
}

func (f *fakeAdvisorStore) Update(ctx context.Context, a *models.Advisor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	existing, ok := f.advisors[a.ID]
	if !ok {
		return apperrors.ErrAdvisorNotFound
	}
	cp := *a
	cp.PhotoPath = existing.PhotoPath
	f.advisors[a.ID] = &cp
	return nil
}

func (f *fakeAdvisorStore) UpdatePhotoPath(ctx context.Context, id int64, path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err := f.failOn["UpdatePhotoPath"]; err != nil {
		return err
	}
	a, ok := f.advisors[id]
	if !ok {
		return apperrors.ErrAdvisorNotFound
	}
	a.PhotoPath = &path
	return nil
}

func (f *fakeAdvisorStore) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if _, ok := f.advisors[id]; !ok {
		return apperrors.ErrAdvisorNotFound
	}
	delete(f.advisors, id)
	return nil
}

type fakeCouncilStore struct {
	councils map[int]*models.Council
	nextID   int64
	creates  int
	patches  []models.CouncilPatch
	// hideExisting makes ExistsByGradYear miss, as in a check-then-insert race
	hideExisting bool
}

func newFakeCouncilStore() *fakeCouncilStore {
	return &fakeCouncilStore{councils: map[int]*models.Council{}}
}

func (f *fakeCouncilStore) List(ctx context.Context) ([]*models.Council, error) {
	out := []*models.Council{}
	for _, c := range f.councils {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GradYear < out[j].GradYear })
	return out, nil
}

func (f *fakeCouncilStore) GetByGradYear(ctx context.Context, gradYear int) (*models.Council, error) {
	c, ok := f.councils[gradYear]
	if !ok {
		return nil, apperrors.ErrCouncilNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCouncilStore) ExistsByGradYear(ctx context.Context, gradYear int) (bool, error) {
	if f.hideExisting {
		return false, nil
	}
	_, ok := f.councils[gradYear]
	return ok, nil
}

func (f *fakeCouncilStore) Create(ctx context.Context, c *models.Council) error {
	f.creates++
	if _, ok := f.councils[c.GradYear]; ok {
		return apperrors.ErrCouncilAlreadyExists
	}
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.councils[c.GradYear] = &cp
	return nil
}

func (f *fakeCouncilStore) Update(ctx context.Context, gradYear int, patch models.CouncilPatch) (*models.Council, error) {
	c, ok := f.councils[gradYear]
	if !ok {
		return nil, apperrors.ErrCouncilNotFound
	}
	f.patches = append(f.patches, patch)
	if patch.FallYear != nil {
		c.FallYear = patch.FallYear
	}
	if patch.SpringYear != nil {
		c.SpringYear = patch.SpringYear
	}
	if patch.Name != nil {
		c.Name = patch.Name
	}
	if patch.LogoPath != nil {
		c.LogoPath = patch.LogoPath
	}
	if patch.AdvisorSet {
		c.AdvisorID = patch.AdvisorID
	}
	cp := *c
	return &cp, nil
}

type fakeCommitteeStore struct {
	committees map[int64]*models.Committee
	nextID     int64
}

func newFakeCommitteeStore(committees ...*models.Committee) *fakeCommitteeStore {
	f := &fakeCommitteeStore{committees: map[int64]*models.Committee{}}
	for _, c := range committees {
		f.committees[c.ID] = c
		if c.ID > f.nextID {
			f.nextID = c.ID
		}
	}
	return f
}

func (f *fakeCommitteeStore) ListByGradYear(ctx context.Context, gradYear int) ([]*models.Committee, error) {
	out := []*models.Committee{}
	for _, c := range f.committees {
		if c.GradYear == gradYear {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCommitteeStore) GetByID(ctx context.Context, id int64) (*models.Committee, error) {
	c, ok := f.committees[id]
	if !ok {
		return nil, apperrors.ErrCommitteeNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCommitteeStore) Create(ctx context.Context, c *models.Committee) error {
	f.nextID++
	c.ID = f.nextID
	c.CreatedAt = time.Now()
	cp := *c
	f.committees[c.ID] = &cp
	return nil
}

type fakeMemberStore struct {
	members    map[uuid.UUID]*models.Member
	committees *fakeCommitteeStore
	failRole   error
	writes     int
}

func newFakeMemberStore(committees *fakeCommitteeStore, members ...*models.Member) *fakeMemberStore {
	f := &fakeMemberStore{members: map[uuid.UUID]*models.Member{}, committees: committees}
	for _, m := range members {
		f.members[m.ID] = m
	}
	return f
}

func (f *fakeMemberStore) joined(m *models.Member) *models.Member {
	cp := *m
	cp.CommitteeName = nil
	if cp.CommitteeID != nil && f.committees != nil {
		if c, ok := f.committees.committees[*cp.CommitteeID]; ok {
			name := c.Name
			cp.CommitteeName = &name
		}
	}
	return &cp
}

func (f *fakeMemberStore) ListByGradYear(ctx context.Context, gradYear int) ([]*models.Member, error) {
	out := []*models.Member{}
	for _, m := range f.members {
		if m.GradYear != nil && *m.GradYear == gradYear {
			out = append(out, f.joined(m))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].DisplayName()) < strings.ToLower(out[j].DisplayName())
	})
	return out, nil
}

func (f *fakeMemberStore) ListByCommittee(ctx context.Context, committeeID int64) ([]*models.Member, error) {
	out := []*models.Member{}
	for _, m := range f.members {
		if m.CommitteeID != nil && *m.CommitteeID == committeeID {
			out = append(out, f.joined(m))
		}
	}
	return out, nil
}

func (f *fakeMemberStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, apperrors.ErrMemberNotFound
	}
	return f.joined(m), nil
}

func (f *fakeMemberStore) AssignCommittee(ctx context.Context, id uuid.UUID, committeeID int64, role string) error {
	f.writes++
	m, ok := f.members[id]
	if !ok {
		return apperrors.ErrMemberNotFound
	}
	m.CommitteeID = &committeeID
	m.Role = &role
	return nil
}

func (f *fakeMemberStore) UpdateCommittee(ctx context.Context, id uuid.UUID, committeeID *int64) error {
	f.writes++
	m, ok := f.members[id]
	if !ok {
		return apperrors.ErrMemberNotFound
	}
	m.CommitteeID = committeeID
	return nil
}

func (f *fakeMemberStore) UpdateRole(ctx context.Context, id uuid.UUID, role *string) error {
	f.writes++
	if f.failRole != nil {
		return f.failRole
	}
	m, ok := f.members[id]
	if !ok {
		return apperrors.ErrMemberNotFound
	}
	m.Role = role
	return nil
}

func (f *fakeMemberStore) UpdateProfilePicture(ctx context.Context, id uuid.UUID, path string) error {
	f.writes++
	m, ok := f.members[id]
	if !ok {
		return apperrors.ErrMemberNotFound
	}
	m.ProfilePicture = &path
	return nil
}

func (f *fakeMemberStore) Upsert(ctx context.Context, m *models.Member) error {
	f.writes++
	cp := *m
	if existing, ok := f.members[m.ID]; ok {
		cp.CommitteeID = existing.CommitteeID
		cp.Role = existing.Role
		cp.ProfilePicture = existing.ProfilePicture
	}
	f.members[m.ID] = &cp
	return nil
}

type fakeEventStore struct {
	events map[int64]*models.Event
	nextID int64
	writes []string
}

func newFakeEventStore(events ...*models.Event) *fakeEventStore {
	f := &fakeEventStore{events: map[int64]*models.Event{}}
	for _, e := range events {
		f.events[e.ID] = e
		if e.ID > f.nextID {
			f.nextID = e.ID
		}
	}
	return f
}

func (f *fakeEventStore) List(ctx context.Context) ([]*models.Event, error) {
	out := []*models.Event{}
	for _, e := range f.events {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeEventStore) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (f *fakeEventStore) Create(ctx context.Context, e *models.Event) error {
	f.writes = append(f.writes, "create")
	f.nextID++
	e.ID = f.nextID
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeEventStore) Update(ctx context.Context, e *models.Event) error {
	f.writes = append(f.writes, "update")
	if _, ok := f.events[e.ID]; !ok {
		return apperrors.ErrEventNotFound
	}
	cp := *e
	f.events[e.ID] = &cp
	return nil
}

func (f *fakeEventStore) UpdateStatus(ctx context.Context, id int64, status models.EventStatus) error {
	f.writes = append(f.writes, "status")
	e, ok := f.events[id]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	e.Status = status
	return nil
}

func (f *fakeEventStore) Delete(ctx context.Context, id int64) error {
	f.writes = append(f.writes, "delete")
	if _, ok := f.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(f.events, id)
	return nil
}

// memoryObjectStore keeps uploaded objects in memory
type memoryObjectStore struct {
	objects   map[string][]byte
	uploadErr error
	uploads   []filestorage.UploadOptions
}

func newMemoryObjectStore() *memoryObjectStore {
	return &memoryObjectStore{objects: map[string][]byte{}}
}

func (m *memoryObjectStore) Upload(ctx context.Context, bucket, objectPath string, content io.Reader, opts filestorage.UploadOptions) error {
	if m.uploadErr != nil {
		return m.uploadErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	m.uploads = append(m.uploads, opts)
	m.objects[bucket+"/"+objectPath] = data
	return nil
}

func (m *memoryObjectStore) PublicURL(bucket, objectPath string) string {
	return "https://cdn.example.test/" + bucket + "/" + objectPath
}

func (m *memoryObjectStore) Remove(ctx context.Context, bucket, objectPath string) error {
	delete(m.objects, bucket+"/"+objectPath)
	return nil
}

type publishedChange struct {
	Type    string
	Subject string
}

type recordingNotifier struct {
	changes []publishedChange
}

func (r *recordingNotifier) Publish(ctx context.Context, eventType, subject string, data interface{}) error {
	r.changes = append(r.changes, publishedChange{Type: eventType, Subject: subject})
	return nil
}

func (r *recordingNotifier) types() []string {
	out := make([]string, 0, len(r.changes))
	for _, c := range r.changes {
		out = append(out, c.Type)
	}
	return out
}

const testFallback = "/cav_man.png"

var fixedNow = time.UnixMilli(1700000000000)

func newTestPhotoService(store *memoryObjectStore, advisors advisorPhotoLinker, members memberPhotoLinker) *photoServiceImpl {
	svc := NewPhotoService(store, advisors, members, "avatars", testFallback).(*photoServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func newTestChanges(n *recordingNotifier) *changePublisher {
	return newChangePublisher(n, zerolog.Nop())
}

func pngUpload(name string) *FileUpload {
	return &FileUpload{Filename: name, ContentType: "image/png", Content: bytes.NewReader([]byte("\x89PNG"))}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }
