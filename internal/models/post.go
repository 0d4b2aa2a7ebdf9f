// models содержит доменные сущности блога, получаемые от удалённого API.
// Формы совпадают с JSON-ответами апстрима, валидируются на границе
// (internal/upstream) и дальше по слоям ходят уже типизированными.
package models

// Reactions — счётчики реакций поста.
type Reactions struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

// Post — пост блога.
//
// Особенности:
//   - после загрузки не мутируется (редактирования в системе нет);
//   - Tags — упорядоченный список, порядок апстрима сохраняется.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UserID    int64     `json:"userId"`
	Tags      []string  `json:"tags"`
	Reactions Reactions `json:"reactions"`
	Views     int       `json:"views"`
}

// PostPage — страница постов с метаданными пагинации апстрима.
type PostPage struct {
	Posts []Post `json:"posts"`
	Total int    `json:"total"`
	Skip  int    `json:"skip"`
	Limit int    `json:"limit"`
}

// UserPostPage — все посты одного автора (апстрим отдаёт без skip/limit).
type UserPostPage struct {
	Posts []Post `json:"posts"`
	Total int    `json:"total"`
}
