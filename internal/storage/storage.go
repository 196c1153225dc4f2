package storage

import "social-store/internal/models"

// Store - интерфейс хранилища для слоя представления; мутации
// возвращают false, если операция не прошла проверки
type Store interface {
	Register(username, password string) bool
	Login(username, password string) bool
	Logout()
	CurrentUsername() string
	SearchUser(username string) (models.User, bool)

	CreatePost(content string) bool
	EditPost(postID, newContent string) bool
	DeletePost(postID string) bool
	GetAllPosts() []models.Post
	GetFeedPosts() []models.Post
	GetPostsByUser(username string) []models.Post
	PostSummary(p models.Post) string

	AddComment(postID, text string) bool
	GetComments(postID string) []models.Comment
	ToggleLike(postID string) bool
	GetLikeCount(postID string) int

	AddFriend(friendUsername string) bool
	RemoveFriend(friendUsername string) bool
	GetFriendList() []string
	SuggestFriends() []string

	Load() error
	Save() error
}
