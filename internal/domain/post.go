package domain

// MaxTitleLength is the width of the posts.title column.
const MaxTitleLength = 100

// Post represents a blog post authored by a user. UpdatedAt is nil
// until the post is updated for the first time, then holds the time
// of the most recent update.
type Post struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt *int64 `json:"updatedAt"`
}

// PostWithUser is the read-model produced by joining a post with its
// author: the post fields minus the foreign key, plus the embedded user.
type PostWithUser struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt *int64 `json:"updatedAt"`
	User      User   `json:"user"`
}

// ValidateNewPost checks the fields supplied to PostStore.Create.
func ValidateNewPost(title, content string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	if content == "" {
		return ErrEmptyContent
	}
	return nil
}

// ValidateTitle checks that a title is non-empty and fits the
// posts.title column.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
