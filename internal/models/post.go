package models

import "strconv"

// Модель поста; PostID монотонно растет и служит ключом сортировки ленты
type Post struct {
	PostID         string `json:"postId"`
	AuthorUsername string `json:"authorUsername"`
	Content        string `json:"content"`
}

// Encode сериализует пост вместе с числом лайков
func (p Post) Encode(likes int) string {
	return p.PostID + Delimiter + p.AuthorUsername + Delimiter + p.Content + Delimiter + strconv.Itoa(likes)
}

// ParsePost разбирает строку файла; число лайков необязательно,
// некорректное значение считается нулем
func ParsePost(line string) (Post, int) {
	parts := splitLine(line)
	if len(parts) >= 3 {
		likes := 0
		if len(parts) >= 4 {
			if n, err := strconv.Atoi(parts[3]); err == nil {
				likes = n
			}
		}
		return Post{PostID: parts[0], AuthorUsername: parts[1], Content: parts[2]}, likes
	}
	return Post{}, 0
}
