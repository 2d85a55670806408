package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"civicconnect-be/models"
	"civicconnect-be/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var userSession = models.Session{
	ID:    "s1",
	Email: "a@example.com",
	Name:  "User A",
	Role:  models.RoleUser,
}

var adminSession = models.Session{
	ID:    "s2",
	Email: "admin@civicconnect.com",
	Name:  "System Administrator",
	Role:  models.RoleAdmin,
}

func newIssueRouter(issues *MockIssueRepository, session models.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ic := NewIssueController(issues)

	r := gin.New()
	group := r.Group("/api/issue", withSession(session))
	group.POST("/create", ic.Create)
	group.GET("", ic.List)
	group.GET("/:id", ic.Get)
	group.PUT("/:id/status", ic.UpdateStatus)
	group.DELETE("/:id", ic.Delete)
	return r
}

func TestCreateIssue(t *testing.T) {
	issues := new(MockIssueRepository)
	r := newIssueRouter(issues, userSession)

	created := models.Issue{
		ID:          1756500000000,
		Title:       "Pothole",
		Category:    models.Roads,
		Location:    "Main St",
		Urgency:     models.High,
		Description: "Deep pothole",
		Status:      models.Reported,
		ReportedBy:  "a@example.com",
		Timestamp:   time.Now(),
	}

	issues.On("Create", mock.Anything, mock.MatchedBy(func(issue models.Issue) bool {
		return issue.Title == "Pothole" && issue.ReportedBy == "a@example.com"
	})).Return(created, nil)

	body := `{"title":"Pothole","category":"Roads","location":"Main St","urgency":"High","description":"Deep pothole"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/issue/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Issue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.Reported, got.Status)
	assert.Equal(t, int64(1756500000000), got.ID)
	issues.AssertExpectations(t)
}

func TestCreateIssue_InvalidCategory(t *testing.T) {
	issues := new(MockIssueRepository)
	r := newIssueRouter(issues, userSession)

	body := `{"title":"Pothole","category":"Potholes","location":"Main St","urgency":"High","description":"Deep pothole"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/issue/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	issues.AssertNotCalled(t, "Create")
}

func TestCreateIssue_MissingFields(t *testing.T) {
	issues := new(MockIssueRepository)
	r := newIssueRouter(issues, userSession)

	body := `{"title":"Pothole","category":"Roads"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/issue/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	issues.AssertNotCalled(t, "Create")
}

func TestCreateIssue_OversizedImage(t *testing.T) {
	issues := new(MockIssueRepository)
	r := newIssueRouter(issues, userSession)

	// 4M base64 chars decode past the 2MiB cap
	payload := strings.Repeat("A", 4*1024*1024)
	body := `{"title":"Pothole","category":"Roads","location":"Main St","urgency":"High","description":"Deep pothole","imageDataURL":"data:image/png;base64,` + payload + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/issue/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "2MB")
	issues.AssertNotCalled(t, "Create")
}

func TestListIssues_UserScopedToOwnReports(t *testing.T) {
	issues := new(MockIssueRepository)
	r := newIssueRouter(issues, userSession)

	issues.On("List", mock.Anything, repositories.IssueFilter{
		Status:     "Resolved",
		Search:     "pothole",
		ReportedBy: "a@example.com",
	}).Return([]models.Issue{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/issue?status=Resolved&search=pothole", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	issues.AssertExpectations(t)
}

func TestListIssues_AdminSeesAll(t *testing.T) {
	issues := new(MockIssueRepository)
	r := newIssueRouter(issues, adminSession)

	stored := []models.Issue{
		{ID: 2, Title: "Broken streetlight", Status: models.Confirmed, ReportedBy: "b@example.com"},
		{ID: 1, Title: "Pothole", Status: models.Reported, ReportedBy: "a@example.com"},
	}
	issues.On("List", mock.Anything, repositories.IssueFilter{Urgency: "High"}).Return(stored, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/issue?urgency=High", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalIssues":2`)
	issues.AssertExpectations(t)
}

func TestUpdateStatus(t *testing.T) {
	issues := new(MockIssueRepository)
	r := newIssueRouter(issues, adminSession)

	issues.On("UpdateStatus", mock.Anything, int64(42), models.Resolved, "Fixed").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/issue/42/status", strings.NewReader(`{"status":"Resolved","notes":"Fixed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	issues.AssertExpectations(t)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	issues := new(MockIssueRepository)
	r := newIssueRouter(issues, adminSession)

	issues.On("UpdateStatus", mock.Anything, int64(99), models.Resolved, "").Return(models.ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/issue/99/status", strings.NewReader(`{"status":"Resolved"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	issues := new(MockIssueRepository)
	r := newIssueRouter(issues, adminSession)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/issue/42/status", strings.NewReader(`{"status":"Closed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	issues.AssertNotCalled(t, "UpdateStatus")
}

func TestDeleteIssue_OwnIssue(t *testing.T) {
	issues := new(MockIssueRepository)
	r := newIssueRouter(issues, userSession)

	issues.On("GetByID", mock.Anything, int64(7)).Return(models.Issue{ID: 7, ReportedBy: "a@example.com"}, nil)
	issues.On("Delete", mock.Anything, int64(7)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/issue/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	issues.AssertExpectations(t)
}

func TestDeleteIssue_OtherReporterForbidden(t *testing.T) {
	issues := new(MockIssueRepository)
	r := newIssueRouter(issues, userSession)

	issues.On("GetByID", mock.Anything, int64(7)).Return(models.Issue{ID: 7, ReportedBy: "b@example.com"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/issue/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	issues.AssertNotCalled(t, "Delete")
}

func TestDeleteIssue_AdminDeletesAny(t *testing.T) {
	issues := new(MockIssueRepository)
	r := newIssueRouter(issues, adminSession)

	issues.On("Delete", mock.Anything, int64(7)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/issue/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	issues.AssertNotCalled(t, "GetByID")
}

func TestDeleteIssue_NotFound(t *testing.T) {
	issues := new(MockIssueRepository)
	r := newIssueRouter(issues, adminSession)

	issues.On("Delete", mock.Anything, int64(99)).Return(models.ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/issue/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetIssue_NotFound(t *testing.T) {
	issues := new(MockIssueRepository)
	r := newIssueRouter(issues, userSession)

	issues.On("GetByID", mock.Anything, int64(123)).Return(models.Issue{}, models.ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/issue/123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
