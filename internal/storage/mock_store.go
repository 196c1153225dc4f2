package storage

import (
	"social-store/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Register(username, password string) bool {
	args := m.Called(username, password)
	return args.Bool(0)
}

func (m *MockStore) Login(username, password string) bool {
	args := m.Called(username, password)
	return args.Bool(0)
}

func (m *MockStore) Logout() {
	m.Called()
}

func (m *MockStore) CurrentUsername() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockStore) SearchUser(username string) (models.User, bool) {
	args := m.Called(username)
	return args.Get(0).(models.User), args.Bool(1)
}

func (m *MockStore) CreatePost(content string) bool {
	args := m.Called(content)
	return args.Bool(0)
}

func (m *MockStore) EditPost(postID, newContent string) bool {
	args := m.Called(postID, newContent)
	return args.Bool(0)
}

func (m *MockStore) DeletePost(postID string) bool {
	args := m.Called(postID)
	return args.Bool(0)
}

func (m *MockStore) GetAllPosts() []models.Post {
	args := m.Called()
	return args.Get(0).([]models.Post)
}

func (m *MockStore) GetFeedPosts() []models.Post {
	args := m.Called()
	return args.Get(0).([]models.Post)
}

func (m *MockStore) GetPostsByUser(username string) []models.Post {
	args := m.Called(username)
	return args.Get(0).([]models.Post)
}

func (m *MockStore) PostSummary(p models.Post) string {
	args := m.Called(p)
	return args.String(0)
}

func (m *MockStore) AddComment(postID, text string) bool {
	args := m.Called(postID, text)
	return args.Bool(0)
}

func (m *MockStore) GetComments(postID string) []models.Comment {
	args := m.Called(postID)
	return args.Get(0).([]models.Comment)
}

func (m *MockStore) ToggleLike(postID string) bool {
	args := m.Called(postID)
	return args.Bool(0)
}

func (m *MockStore) GetLikeCount(postID string) int {
	args := m.Called(postID)
	return args.Int(0)
}

func (m *MockStore) AddFriend(friendUsername string) bool {
	args := m.Called(friendUsername)
	return args.Bool(0)
}

func (m *MockStore) RemoveFriend(friendUsername string) bool {
	args := m.Called(friendUsername)
	return args.Bool(0)
}

func (m *MockStore) GetFriendList() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockStore) SuggestFriends() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockStore) Load() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockStore) Save() error {
	args := m.Called()
	return args.Error(0)
}
