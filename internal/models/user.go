package models

// Модель пользователя; username уникален и служит первичным ключом
type User struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Encode сериализует пользователя в строку файла
func (u User) Encode() string {
	return u.UserID + Delimiter + u.Username + Delimiter + u.Password
}

// ParseUser разбирает строку файла; при нехватке полей
// возвращается пустой пользователь
func ParseUser(line string) User {
	parts := splitLine(line)
	if len(parts) >= 3 {
		return User{UserID: parts[0], Username: parts[1], Password: parts[2]}
	}
	return User{}
}
