package models

// Модель комментария к посту
type Comment struct {
	CommentID      string `json:"commentId"`
	PostID         string `json:"postId"` // ID поста, к которому прикреплён комментарий
	AuthorUsername string `json:"authorUsername"`
	Content        string `json:"content"`
}

// Encode сериализует комментарий в строку файла
func (c Comment) Encode() string {
	return c.CommentID + Delimiter + c.PostID + Delimiter + c.AuthorUsername + Delimiter + c.Content
}

// ParseComment разбирает строку файла; при нехватке полей
// возвращается пустой комментарий
func ParseComment(line string) Comment {
	parts := splitLine(line)
	if len(parts) >= 4 {
		return Comment{CommentID: parts[0], PostID: parts[1], AuthorUsername: parts[2], Content: parts[3]}
	}
	return Comment{}
}
