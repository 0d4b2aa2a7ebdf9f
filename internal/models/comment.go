package models

// CommentUser — минимальная ссылка на автора комментария.
// Полный профиль апстрим в комментарий не вкладывает.
type CommentUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Comment — комментарий к посту.
type Comment struct {
	ID     int64       `json:"id"`
	Body   string      `json:"body"`
	PostID int64       `json:"postId"`
	Likes  int         `json:"likes"`
	User   CommentUser `json:"user"`
}

// CommentPage — комментарии одного поста.
type CommentPage struct {
	Comments []Comment `json:"comments"`
	Total    int       `json:"total"`
}
