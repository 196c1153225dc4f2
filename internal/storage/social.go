package storage

import (
	"strconv"

	"social-store/internal/container"
	"social-store/internal/graph"
	"social-store/internal/models"

	"github.com/sirupsen/logrus"
)

// SocialStore - in-memory хранилище со всеми индексами; не рассчитано
// на конкурентный доступ, владелец обязан сериализовать вызовы
type SocialStore struct {
	users        *container.HashTable[models.User]
	userPosts    *container.HashTable[container.List[models.Post]]
	postComments *container.HashTable[container.Queue[models.Comment]]
	postLikes    *container.HashTable[container.Stack[string]]
	friendGraph  *graph.Graph
	timeline     *container.BST[models.Post]

	currentUser *models.User

	// счетчики ID; новые ID никогда не повторяют загруженные
	maxUserID    int
	maxPostID    int
	maxCommentID int

	files Files
	log   logrus.FieldLogger
}

// NewSocialStore создает пустое хранилище поверх заданных файлов
func NewSocialStore(files Files, log logrus.FieldLogger) *SocialStore {
	return &SocialStore{
		users:        container.NewHashTable[models.User](),
		userPosts:    container.NewHashTable[container.List[models.Post]](),
		postComments: container.NewHashTable[container.Queue[models.Comment]](),
		postLikes:    container.NewHashTable[container.Stack[string]](),
		friendGraph:  graph.NewGraph(),
		timeline: container.NewBST(func(a, b models.Post) bool {
			return a.PostID < b.PostID
		}),
		maxUserID:    0,   // первый пользователь U1
		maxPostID:    99,  // первый пост P100
		maxCommentID: 999, // первый комментарий C1000
		files:        files,
		log:          log,
	}
}

func (s *SocialStore) generateUserID() string {
	s.maxUserID++
	return "U" + strconv.Itoa(s.maxUserID)
}

func (s *SocialStore) generatePostID() string {
	s.maxPostID++
	return "P" + strconv.Itoa(s.maxPostID)
}

func (s *SocialStore) generateCommentID() string {
	s.maxCommentID++
	return "C" + strconv.Itoa(s.maxCommentID)
}

// extractID выделяет числовую часть ID, например P105 -> 105
func extractID(id string, prefix byte) int {
	if len(id) < 2 || id[0] != prefix {
		return 0
	}
	n, err := strconv.Atoi(id[1:])
	if err != nil {
		return 0
	}
	return n
}

// Register заводит нового пользователя; занятое имя - отказ.
// Вход при этом не выполняется
func (s *SocialStore) Register(username, password string) bool {
	if s.users.Search(username) != nil {
		s.log.WithField("username", username).Warn("Registration rejected: username taken")
		return false
	}
	s.users.Insert(username, models.User{
		UserID:   s.generateUserID(),
		Username: username,
		Password: password,
	})
	s.friendGraph.AddNode(username)
	s.log.WithField("username", username).Info("User registered")
	return true
}

// Login выполняет вход при точном совпадении пароля
func (s *SocialStore) Login(username, password string) bool {
	u := s.users.Search(username)
	if u == nil || u.Password != password {
		s.log.WithField("username", username).Warn("Login failed")
		return false
	}
	s.currentUser = u
	s.log.WithField("username", username).Info("User logged in")
	return true
}

// Logout сбрасывает текущую сессию
func (s *SocialStore) Logout() {
	s.currentUser = nil
}

// CurrentUsername возвращает имя текущего пользователя или пустую строку
func (s *SocialStore) CurrentUsername() string {
	if s.currentUser == nil {
		return ""
	}
	return s.currentUser.Username
}

// SearchUser ищет пользователя по имени
func (s *SocialStore) SearchUser(username string) (models.User, bool) {
	u := s.users.Search(username)
	if u == nil {
		return models.User{}, false
	}
	return *u, true
}

// CreatePost создает пост текущего пользователя вместе с пустыми
// очередью комментариев и множеством лайков
func (s *SocialStore) CreatePost(content string) bool {
	if s.currentUser == nil {
		return false
	}
	pid := s.generatePostID()
	p := models.Post{PostID: pid, AuthorUsername: s.currentUser.Username, Content: content}

	list := s.userPosts.Search(s.currentUser.Username)
	if list == nil {
		s.userPosts.Insert(s.currentUser.Username, *container.NewList[models.Post]())
		list = s.userPosts.Search(s.currentUser.Username)
	}
	list.InsertAtEnd(p)
	s.timeline.Insert(p)
	s.postComments.Insert(pid, *container.NewQueue[models.Comment]())
	s.postLikes.Insert(pid, *container.NewStack[string]())

	s.log.WithFields(logrus.Fields{"postId": pid, "author": p.AuthorUsername}).Info("Post created")
	return true
}

// EditPost меняет текст поста; ищем только в списке текущего
// пользователя, чужой пост отредактировать нельзя
func (s *SocialStore) EditPost(postID, newContent string) bool {
	if s.currentUser == nil {
		return false
	}
	list := s.userPosts.Search(s.currentUser.Username)
	if list == nil {
		return false
	}
	ok := list.UpdateFunc(
		func(p models.Post) bool { return p.PostID == postID },
		func(p *models.Post) { p.Content = newContent },
	)
	if !ok {
		return false
	}
	s.rebuildTimeline()
	s.log.WithField("postId", postID).Info("Post edited")
	return true
}

// DeletePost удаляет пост текущего пользователя
func (s *SocialStore) DeletePost(postID string) bool {
	if s.currentUser == nil {
		return false
	}
	list := s.userPosts.Search(s.currentUser.Username)
	if list == nil {
		return false
	}
	ok := list.RemoveFunc(func(p models.Post) bool { return p.PostID == postID })
	if !ok {
		return false
	}
	s.rebuildTimeline()
	s.log.WithField("postId", postID).Info("Post deleted")
	return true
}

// rebuildTimeline пересобирает ленту из пользовательских списков;
// лента - производный индекс, источник истины всегда списки
func (s *SocialStore) rebuildTimeline() {
	s.timeline.Clear()
	s.userPosts.Each(func(_ string, list *container.List[models.Post]) {
		list.Each(func(p *models.Post) {
			s.timeline.Insert(*p)
		})
	})
}

// GetAllPosts возвращает все посты от старых к новым
func (s *SocialStore) GetAllPosts() []models.Post {
	return s.timeline.InOrder()
}

// GetPostsByUser возвращает посты автора в порядке создания
func (s *SocialStore) GetPostsByUser(username string) []models.Post {
	list := s.userPosts.Search(username)
	if list == nil {
		return nil
	}
	return list.ToSlice()
}

// AddComment добавляет комментарий к существующему посту
func (s *SocialStore) AddComment(postID, text string) bool {
	if s.currentUser == nil {
		return false
	}
	q := s.postComments.Search(postID)
	if q == nil {
		s.log.WithField("postId", postID).Warn("Comment rejected: post not found")
		return false
	}
	q.Enqueue(models.Comment{
		CommentID:      s.generateCommentID(),
		PostID:         postID,
		AuthorUsername: s.currentUser.Username,
		Content:        text,
	})
	return true
}

// GetComments возвращает комментарии поста в порядке поступления
func (s *SocialStore) GetComments(postID string) []models.Comment {
	q := s.postComments.Search(postID)
	if q == nil {
		return nil
	}
	return q.ToSlice()
}

// ToggleLike переключает лайк текущего пользователя на посте
func (s *SocialStore) ToggleLike(postID string) bool {
	if s.currentUser == nil {
		return false
	}
	likes := s.postLikes.Search(postID)
	if likes == nil {
		return false
	}
	if likes.Contains(s.currentUser.Username) {
		likes.Remove(s.currentUser.Username)
	} else {
		likes.Push(s.currentUser.Username)
	}
	return true
}

// GetLikeCount возвращает число лайков поста
func (s *SocialStore) GetLikeCount(postID string) int {
	likes := s.postLikes.Search(postID)
	if likes == nil {
		return 0
	}
	return likes.Len()
}

// AddFriend добавляет дружбу с существующим пользователем;
// дружба с собой и повторная дружба - отказ
func (s *SocialStore) AddFriend(friendUsername string) bool {
	if s.currentUser == nil {
		return false
	}
	if s.currentUser.Username == friendUsername {
		return false
	}
	if s.users.Search(friendUsername) == nil {
		return false
	}
	if s.friendGraph.IsFriend(s.currentUser.Username, friendUsername) {
		return false
	}
	s.friendGraph.AddEdge(s.currentUser.Username, friendUsername)
	s.log.WithFields(logrus.Fields{
		"username": s.currentUser.Username,
		"friend":   friendUsername,
	}).Info("Friendship added")
	return true
}

// RemoveFriend снимает дружбу; наличие ребра заранее не проверяется
func (s *SocialStore) RemoveFriend(friendUsername string) bool {
	if s.currentUser == nil {
		return false
	}
	s.friendGraph.RemoveEdge(s.currentUser.Username, friendUsername)
	return true
}

// GetFriendList возвращает друзей текущего пользователя
func (s *SocialStore) GetFriendList() []string {
	if s.currentUser == nil {
		return nil
	}
	return s.friendGraph.Friends(s.currentUser.Username)
}

// SuggestFriends возвращает друзей друзей текущего пользователя
func (s *SocialStore) SuggestFriends() []string {
	if s.currentUser == nil {
		return nil
	}
	return s.friendGraph.SuggestFriends(s.currentUser.Username)
}

// GetFeedPosts строит ленту: посты друзей и рекомендованных авторов
// от новых к старым, собственные посты исключаются
func (s *SocialStore) GetFeedPosts() []models.Post {
	if s.currentUser == nil {
		return nil
	}

	allPosts := s.timeline.ReverseInOrder()

	allowedAuthors := container.NewHashTable[bool]()
	for _, friend := range s.friendGraph.Friends(s.currentUser.Username) {
		allowedAuthors.Insert(friend, true)
	}
	for _, suggested := range s.friendGraph.SuggestFriends(s.currentUser.Username) {
		allowedAuthors.Insert(suggested, true)
	}

	var feed []models.Post
	for _, p := range allPosts {
		if p.AuthorUsername == s.currentUser.Username {
			continue
		}
		if allowedAuthors.Search(p.AuthorUsername) != nil {
			feed = append(feed, p)
		}
	}
	return feed
}

// PostSummary формирует отображаемое представление поста
func (s *SocialStore) PostSummary(p models.Post) string {
	likes := s.GetLikeCount(p.PostID)
	return p.PostID + " | " + p.AuthorUsername + "\n" + p.Content + "\nLikes: " + strconv.Itoa(likes)
}
