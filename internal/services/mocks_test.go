package services_test

import (
	"portfolio/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockSkillRepository is a mock implementation of repositories.SkillRepository
type MockSkillRepository struct {
	mock.Mock
}

func (m *MockSkillRepository) GetAll() ([]models.Skill, error) {
	args := m.Called()
	return args.Get(0).([]models.Skill), args.Error(1)
}

func (m *MockSkillRepository) Create(skill *models.Skill) error {
	args := m.Called(skill)
	return args.Error(0)
}

// MockProjectRepository is a mock implementation of repositories.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) GetAll() ([]models.Project, error) {
	args := m.Called()
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepository) Create(project *models.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

// MockProfileRepository is a mock implementation of repositories.ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Get() (*models.Profile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

// MockMessageRepository is a mock implementation of repositories.MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) GetAll() ([]models.ContactMessage, error) {
	args := m.Called()
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

func (m *MockMessageRepository) Create(message *models.ContactMessage) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *MockMessageRepository) MarkRead(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockMessageRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockVisitorRepository is a mock implementation of repositories.VisitorRepository
type MockVisitorRepository struct {
	mock.Mock
}

func (m *MockVisitorRepository) GetCount() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVisitorRepository) IncrementCount() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishContactReceived(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}
