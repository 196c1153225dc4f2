package storage

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"social-store/internal/container"
	"social-store/internal/models"

	"github.com/pkg/errors"
)

// Files - пути к четырем файлам хранилища
type Files struct {
	Users    string
	Posts    string
	Comments string
	Friends  string
}

// Load читает все файлы в память; порядок фиксирован: пользователи,
// посты, комментарии, дружба. Отсутствующий файл считается первым
// запуском, битые строки пропускаются
func (s *SocialStore) Load() error {
	if err := s.loadUsers(); err != nil {
		return err
	}
	if err := s.loadPosts(); err != nil {
		return err
	}
	if err := s.loadComments(); err != nil {
		return err
	}
	return s.loadFriends()
}

// eachLine читает файл построчно; отсутствие файла - не ошибка
func (s *SocialStore) eachLine(path string, fn func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.WithField("file", path).Debug("Data file absent, starting empty")
			return nil
		}
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	return errors.Wrapf(scanner.Err(), "read %s", path)
}

func (s *SocialStore) loadUsers() error {
	return s.eachLine(s.files.Users, func(line string) {
		u := models.ParseUser(line)
		if u.Username == "" {
			return
		}
		s.users.Insert(u.Username, u)
		s.friendGraph.AddNode(u.Username)
		if n := extractID(u.UserID, 'U'); n > s.maxUserID {
			s.maxUserID = n
		}
	})
}

func (s *SocialStore) loadPosts() error {
	return s.eachLine(s.files.Posts, func(line string) {
		p, likesFromFile := models.ParsePost(line)
		if p.PostID == "" {
			return
		}
		if n := extractID(p.PostID, 'P'); n > s.maxPostID {
			s.maxPostID = n
		}

		list := s.userPosts.Search(p.AuthorUsername)
		if list == nil {
			s.userPosts.Insert(p.AuthorUsername, *container.NewList[models.Post]())
			list = s.userPosts.Search(p.AuthorUsername)
		}
		list.InsertAtEnd(p)
		s.timeline.Insert(p)
		s.postComments.Insert(p.PostID, *container.NewQueue[models.Comment]())

		// имена лайкнувших не сохраняются, восстанавливаем только
		// счетчик синтетическими элементами
		likes := container.NewStack[string]()
		for i := 0; i < likesFromFile; i++ {
			likes.Push("L" + strconv.Itoa(i))
		}
		s.postLikes.Insert(p.PostID, *likes)
	})
}

func (s *SocialStore) loadComments() error {
	return s.eachLine(s.files.Comments, func(line string) {
		c := models.ParseComment(line)
		if c.CommentID == "" {
			return
		}
		if n := extractID(c.CommentID, 'C'); n > s.maxCommentID {
			s.maxCommentID = n
		}
		// комментарий к неизвестному посту молча теряется
		if q := s.postComments.Search(c.PostID); q != nil {
			q.Enqueue(c)
		}
	})
}

func (s *SocialStore) loadFriends() error {
	return s.eachLine(s.files.Friends, func(line string) {
		parts := strings.Split(line, models.Delimiter)
		if len(parts) >= 2 {
			s.friendGraph.AddEdge(parts[0], parts[1])
		}
	})
}

// Save записывает все файлы целиком; вызывается один раз при
// завершении работы
func (s *SocialStore) Save() error {
	if err := s.saveUsers(); err != nil {
		return err
	}
	if err := s.savePosts(); err != nil {
		return err
	}
	if err := s.saveComments(); err != nil {
		return err
	}
	return s.saveFriends()
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return errors.Wrapf(err, "write %s", path)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "flush %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

func (s *SocialStore) saveUsers() error {
	var lines []string
	s.users.Each(func(_ string, u *models.User) {
		lines = append(lines, u.Encode())
	})
	return writeLines(s.files.Users, lines)
}

func (s *SocialStore) savePosts() error {
	var lines []string
	s.userPosts.Each(func(_ string, list *container.List[models.Post]) {
		list.Each(func(p *models.Post) {
			lines = append(lines, p.Encode(s.GetLikeCount(p.PostID)))
		})
	})
	return writeLines(s.files.Posts, lines)
}

func (s *SocialStore) saveComments() error {
	var lines []string
	s.postComments.Each(func(_ string, q *container.Queue[models.Comment]) {
		for _, c := range q.ToSlice() {
			lines = append(lines, c.Encode())
		}
	})
	return writeLines(s.files.Comments, lines)
}

// saveFriends пишет каждое ребро один раз, хотя в графе оно
// хранится с двух сторон
func (s *SocialStore) saveFriends() error {
	var lines []string
	savedPairs := container.NewHashTable[bool]()
	s.friendGraph.Each(func(u1 string, friends []string) {
		for _, u2 := range friends {
			key := u1 + "_" + u2
			if u2 < u1 {
				key = u2 + "_" + u1
			}
			if savedPairs.Search(key) != nil {
				continue
			}
			savedPairs.Insert(key, true)
			lines = append(lines, u1+models.Delimiter+u2)
		}
	})
	return writeLines(s.files.Friends, lines)
}
