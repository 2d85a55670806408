package controllers

import (
	"context"

	"civicconnect-be/models"
	"civicconnect-be/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockIssueRepository mocks the IssueRepository interface
type MockIssueRepository struct {
	mock.Mock
}

func (m *MockIssueRepository) List(ctx context.Context, filter repositories.IssueFilter) ([]models.Issue, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Issue), args.Error(1)
}

func (m *MockIssueRepository) GetByID(ctx context.Context, id int64) (models.Issue, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Issue), args.Error(1)
}

func (m *MockIssueRepository) Create(ctx context.Context, issue models.Issue) (models.Issue, error) {
	args := m.Called(ctx, issue)
	return args.Get(0).(models.Issue), args.Error(1)
}

func (m *MockIssueRepository) UpdateStatus(ctx context.Context, id int64, status models.IssueStatus, notes string) error {
	args := m.Called(ctx, id, status, notes)
	return args.Error(0)
}

func (m *MockIssueRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIssueRepository) CountByStatus(ctx context.Context, reportedBy string) (map[models.IssueStatus]int64, error) {
	args := m.Called(ctx, reportedBy)
	return args.Get(0).(map[models.IssueStatus]int64), args.Error(1)
}

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) FindByCredentials(ctx context.Context, email, password string) (models.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAdminRepository mocks the AdminRepository interface
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Get(ctx context.Context) (models.AdminAccount, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.AdminAccount), args.Error(1)
}

func (m *MockAdminRepository) Seed(ctx context.Context, account models.AdminAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// MockSessionStore mocks the SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, session models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, id string) (models.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// withSession injects a session the way AuthMiddleware would.
func withSession(session models.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", session)
		c.Next()
	}
}
