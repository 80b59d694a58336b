package controllers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/app/roster"
	"github.com/hooplannedthis/api/internal/app/services"
)

var errRemote = errors.New("connection reset by peer")

type mockAdvisorService struct{ mock.Mock }

func (m *mockAdvisorService) ListAdvisors(ctx context.Context) ([]dto.AdvisorResponse, error) {
	args := m.Called(ctx)
	advisors, _ := args.Get(0).([]dto.AdvisorResponse)
	return advisors, args.Error(1)
}

func (m *mockAdvisorService) CreateAdvisor(ctx context.Context, req *dto.AdvisorRequest, photo *services.FileUpload) (*dto.AdvisorMutationResponse, error) {
	args := m.Called(ctx, req, photo)
	resp, _ := args.Get(0).(*dto.AdvisorMutationResponse)
	return resp, args.Error(1)
}

func (m *mockAdvisorService) UpdateAdvisor(ctx context.Context, id int64, req *dto.AdvisorRequest, photo *services.FileUpload) (*dto.AdvisorMutationResponse, error) {
	args := m.Called(ctx, id, req, photo)
	resp, _ := args.Get(0).(*dto.AdvisorMutationResponse)
	return resp, args.Error(1)
}

func (m *mockAdvisorService) DeleteAdvisor(ctx context.Context, id int64) (*dto.AdvisorMutationResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*dto.AdvisorMutationResponse)
	return resp, args.Error(1)
}

func (m *mockAdvisorService) UploadAdvisorPhoto(ctx context.Context, id int64, photo *services.FileUpload) (*dto.AdvisorMutationResponse, error) {
	args := m.Called(ctx, id, photo)
	resp, _ := args.Get(0).(*dto.AdvisorMutationResponse)
	return resp, args.Error(1)
}

type mockCouncilService struct{ mock.Mock }

func (m *mockCouncilService) ListCouncils(ctx context.Context) ([]dto.CouncilResponse, error) {
	args := m.Called(ctx)
	councils, _ := args.Get(0).([]dto.CouncilResponse)
	return councils, args.Error(1)
}

func (m *mockCouncilService) GetCouncil(ctx context.Context, gradYear int) (*dto.CouncilResponse, error) {
	args := m.Called(ctx, gradYear)
	council, _ := args.Get(0).(*dto.CouncilResponse)
	return council, args.Error(1)
}

func (m *mockCouncilService) PreviewName(gradYear int, fallYear, springYear *int) dto.NamePreviewResponse {
	args := m.Called(gradYear, fallYear, springYear)
	return args.Get(0).(dto.NamePreviewResponse)
}

func (m *mockCouncilService) CreateCouncil(ctx context.Context, req *dto.CreateCouncilRequest, logo *services.FileUpload) (*dto.CouncilResponse, error) {
	args := m.Called(ctx, req, logo)
	council, _ := args.Get(0).(*dto.CouncilResponse)
	return council, args.Error(1)
}

func (m *mockCouncilService) UpdateCouncil(ctx context.Context, gradYear int, req *dto.UpdateCouncilRequest, logo *services.FileUpload) (*dto.CouncilResponse, error) {
	args := m.Called(ctx, gradYear, req, logo)
	council, _ := args.Get(0).(*dto.CouncilResponse)
	return council, args.Error(1)
}

type mockCommitteeService struct{ mock.Mock }

func (m *mockCommitteeService) ListCommittees(ctx context.Context, gradYear int) ([]dto.CommitteeResponse, error) {
	args := m.Called(ctx, gradYear)
	committees, _ := args.Get(0).([]dto.CommitteeResponse)
	return committees, args.Error(1)
}

func (m *mockCommitteeService) CreateCommittee(ctx context.Context, gradYear int, req *dto.CreateCommitteeRequest) ([]dto.CommitteeResponse, error) {
	args := m.Called(ctx, gradYear, req)
	committees, _ := args.Get(0).([]dto.CommitteeResponse)
	return committees, args.Error(1)
}

type mockAssignmentService struct{ mock.Mock }

func (m *mockAssignmentService) GetAssignments(ctx context.Context, committeeID int64) (*dto.AssignmentView, error) {
	args := m.Called(ctx, committeeID)
	view, _ := args.Get(0).(*dto.AssignmentView)
	return view, args.Error(1)
}

func (m *mockAssignmentService) AssignMember(ctx context.Context, committeeID int64, req *dto.AssignMemberRequest) (*dto.AssignmentView, error) {
	args := m.Called(ctx, committeeID, req)
	view, _ := args.Get(0).(*dto.AssignmentView)
	return view, args.Error(1)
}

type mockRoleBoardService struct{ mock.Mock }

func (m *mockRoleBoardService) GetBoard(ctx context.Context, gradYear int) (*roster.Board, error) {
	args := m.Called(ctx, gradYear)
	board, _ := args.Get(0).(*roster.Board)
	return board, args.Error(1)
}

func (m *mockRoleBoardService) UpdateMemberCommittee(ctx context.Context, gradYear int, memberID uuid.UUID, committeeID *int64) (*roster.Board, error) {
	args := m.Called(ctx, gradYear, memberID, committeeID)
	board, _ := args.Get(0).(*roster.Board)
	return board, args.Error(1)
}

func (m *mockRoleBoardService) UpdateMemberRole(ctx context.Context, gradYear int, memberID uuid.UUID, role string) (*roster.Board, error) {
	args := m.Called(ctx, gradYear, memberID, role)
	board, _ := args.Get(0).(*roster.Board)
	return board, args.Error(1)
}

type mockEventService struct{ mock.Mock }

func (m *mockEventService) ListEvents(ctx context.Context) ([]dto.EventResponse, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]dto.EventResponse)
	return events, args.Error(1)
}

func (m *mockEventService) CreateEvent(ctx context.Context, req *dto.EventRequest) (*dto.EventResponse, error) {
	args := m.Called(ctx, req)
	event, _ := args.Get(0).(*dto.EventResponse)
	return event, args.Error(1)
}

func (m *mockEventService) UpdateEvent(ctx context.Context, id int64, req *dto.EventRequest) (*dto.EventResponse, error) {
	args := m.Called(ctx, id, req)
	event, _ := args.Get(0).(*dto.EventResponse)
	return event, args.Error(1)
}

func (m *mockEventService) UpdateEventStatus(ctx context.Context, id int64, status string) (*dto.EventResponse, error) {
	args := m.Called(ctx, id, status)
	event, _ := args.Get(0).(*dto.EventResponse)
	return event, args.Error(1)
}

func (m *mockEventService) DeleteEvent(ctx context.Context, id int64, confirmed bool) error {
	return m.Called(ctx, id, confirmed).Error(0)
}

type mockProfileService struct{ mock.Mock }

func (m *mockProfileService) GetProfile(ctx context.Context, memberID uuid.UUID) (*dto.ProfileResponse, error) {
	args := m.Called(ctx, memberID)
	profile, _ := args.Get(0).(*dto.ProfileResponse)
	return profile, args.Error(1)
}

func (m *mockProfileService) UpsertProfile(ctx context.Context, memberID uuid.UUID, email string, req *dto.UpsertProfileRequest) (*dto.ProfileResponse, error) {
	args := m.Called(ctx, memberID, email, req)
	profile, _ := args.Get(0).(*dto.ProfileResponse)
	return profile, args.Error(1)
}

func (m *mockProfileService) UploadProfilePhoto(ctx context.Context, memberID uuid.UUID, photo *services.FileUpload) (*dto.PhotoUploadResponse, error) {
	args := m.Called(ctx, memberID, photo)
	result, _ := args.Get(0).(*dto.PhotoUploadResponse)
	return result, args.Error(1)
}

func (m *mockProfileService) GetMyCommittee(ctx context.Context, memberID uuid.UUID) (*dto.MyCommitteeResponse, error) {
	args := m.Called(ctx, memberID)
	committee, _ := args.Get(0).(*dto.MyCommitteeResponse)
	return committee, args.Error(1)
}

type mockAdminService struct{ mock.Mock }

func (m *mockAdminService) Unlock(ctx context.Context, password string) (*dto.UnlockResponse, error) {
	args := m.Called(ctx, password)
	resp, _ := args.Get(0).(*dto.UnlockResponse)
	return resp, args.Error(1)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
