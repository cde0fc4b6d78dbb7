package domain

// Comment represents a comment left on a post. Comments are never
// updated in place, only created and deleted, so there is no
// UpdatedAt field.
type Comment struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"postId"`
	UserID    int64  `json:"userId"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
}

// CommentWithUser is a comment joined with its author.
type CommentWithUser struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"postId"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	User      User   `json:"user"`
}

// CommentWithPostAndUser is a comment joined with both the post it
// belongs to and its author.
type CommentWithPostAndUser struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	Post      Post   `json:"post"`
	User      User   `json:"user"`
}

// WithUser pairs a comment with its author.
func (c Comment) WithUser(user User) CommentWithUser {
	return CommentWithUser{
		ID:        c.ID,
		PostID:    c.PostID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		User:      user,
	}
}

// ValidateNewComment checks the fields supplied to CommentStore.Create.
func ValidateNewComment(content string) error {
	if content == "" {
		return ErrEmptyContent
	}
	return nil
}
