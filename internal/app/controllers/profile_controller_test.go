package controllers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	appauth "github.com/hooplannedthis/api/internal/app/auth"
	"github.com/hooplannedthis/api/internal/app/models/dto"
	"github.com/hooplannedthis/api/internal/pkg/apperrors"
)

func newProfileRouter(svc *mockProfileService, ac appauth.Context) http.Handler {
	c := NewProfileController(svc)
	r := newRouter(ac)
	r.GET("/me", c.GetProfile)
	r.PUT("/me", c.UpsertProfile)
	r.POST("/me/photo", c.UploadProfilePhoto)
	r.GET("/me/committee", c.GetMyCommittee)
	return r
}

func memberContext() appauth.Context {
	return appauth.Context{MemberID: uuid.MustParse(adaID), Email: "ada@school.edu"}
}

func TestProfile_RequiresMember(t *testing.T) {
	svc := new(mockProfileService)
	router := newProfileRouter(svc, appauth.Anonymous)

	w, body := perform(t, router, jsonRequest(http.MethodGet, "/me", ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeUnauthorized, body.Error.Code)

	w, _ = perform(t, router, jsonRequest(http.MethodGet, "/me/committee", ""))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpsertProfile_UsesTokenIdentity(t *testing.T) {
	svc := new(mockProfileService)
	last := "Lovelace"
	svc.On("UpsertProfile", mock.Anything, uuid.MustParse(adaID), "ada@school.edu",
		&dto.UpsertProfileRequest{FirstName: "Ada", LastName: &last, GradYear: 2027}).
		Return(&dto.ProfileResponse{MemberSummary: dto.MemberSummary{DisplayName: "Ada Lovelace"}}, nil)

	w, _ := perform(t, newProfileRouter(svc, memberContext()), jsonRequest(http.MethodPut, "/me", `{"firstName":"Ada","lastName":"Lovelace","gradYear":2027}`))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestUpsertProfile_GradYearBounds(t *testing.T) {
	svc := new(mockProfileService)

	w, _ := perform(t, newProfileRouter(svc, memberContext()), jsonRequest(http.MethodPut, "/me", `{"firstName":"Ada","gradYear":1899}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UpsertProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadProfilePhoto(t *testing.T) {
	svc := new(mockProfileService)
	path := adaID + "/1700000000000.png"
	svc.On("UploadProfilePhoto", mock.Anything, uuid.MustParse(adaID), mock.Anything).
		Return(&dto.PhotoUploadResponse{Path: path, PublicURL: "http://localhost:8080/uploads/avatars/" + path}, nil)

	req := multipartRequest(t, http.MethodPost, "/me/photo", nil, "photo", "me.png", []byte("png"))
	w, body := perform(t, newProfileRouter(svc, memberContext()), req)

	assert.Equal(t, http.StatusOK, w.Code)
	var result dto.PhotoUploadResponse
	decode(t, body.Data, &result)
	assert.Equal(t, path, result.Path)
}

func TestGetMyCommittee_Unassigned(t *testing.T) {
	svc := new(mockProfileService)
	svc.On("GetMyCommittee", mock.Anything, uuid.MustParse(adaID)).Return(nil, apperrors.ErrMemberUnassigned)

	w, body := perform(t, newProfileRouter(svc, memberContext()), jsonRequest(http.MethodGet, "/me/committee", ""))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "You are not assigned to a committee", body.Error.Message)
}
