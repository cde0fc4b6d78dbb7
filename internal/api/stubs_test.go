package api_test

import (
	"context"

	"github.com/tkaz/blog-api/internal/domain"
	"github.com/tkaz/blog-api/internal/store"
)

// Stub stores with overridable methods. A test sets only the functions
// it expects the handler to call; anything else panics and fails the
// test loudly.

type stubUserStore struct {
	createFn  func(ctx context.Context, username, email string) (*domain.User, error)
	getByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	getAllFn  func(ctx context.Context) ([]domain.User, error)
	updateFn  func(ctx context.Context, id int64, update store.UserUpdate) (bool, error)
	deleteFn  func(ctx context.Context, id int64) (bool, error)
}

var _ store.UserStore = (*stubUserStore)(nil)

func (s *stubUserStore) Create(ctx context.Context, username, email string) (*domain.User, error) {
	if s.createFn == nil {
		panic("unexpected call to UserStore.Create")
	}
	return s.createFn(ctx, username, email)
}

func (s *stubUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if s.getByIDFn == nil {
		panic("unexpected call to UserStore.GetByID")
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubUserStore) GetAll(ctx context.Context) ([]domain.User, error) {
	if s.getAllFn == nil {
		panic("unexpected call to UserStore.GetAll")
	}
	return s.getAllFn(ctx)
}

func (s *stubUserStore) Update(ctx context.Context, id int64, update store.UserUpdate) (bool, error) {
	if s.updateFn == nil {
		panic("unexpected call to UserStore.Update")
	}
	return s.updateFn(ctx, id, update)
}

func (s *stubUserStore) Delete(ctx context.Context, id int64) (bool, error) {
	if s.deleteFn == nil {
		panic("unexpected call to UserStore.Delete")
	}
	return s.deleteFn(ctx, id)
}

type stubPostStore struct {
	createFn          func(ctx context.Context, userID int64, title, content string) (*domain.Post, error)
	getByIDFn         func(ctx context.Context, id int64) (*domain.Post, error)
	getByIDWithUserFn func(ctx context.Context, id int64) (*domain.PostWithUser, error)
	getAllFn          func(ctx context.Context) ([]domain.Post, error)
	getAllWithUsersFn func(ctx context.Context) ([]domain.PostWithUser, error)
	getByUserIDFn     func(ctx context.Context, userID int64) ([]domain.Post, error)
	updateFn          func(ctx context.Context, id int64, update store.PostUpdate) (bool, error)
	deleteFn          func(ctx context.Context, id int64) (bool, error)
}

var _ store.PostStore = (*stubPostStore)(nil)

func (s *stubPostStore) Create(ctx context.Context, userID int64, title, content string) (*domain.Post, error) {
	if s.createFn == nil {
		panic("unexpected call to PostStore.Create")
	}
	return s.createFn(ctx, userID, title, content)
}

func (s *stubPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if s.getByIDFn == nil {
		panic("unexpected call to PostStore.GetByID")
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubPostStore) GetByIDWithUser(ctx context.Context, id int64) (*domain.PostWithUser, error) {
	if s.getByIDWithUserFn == nil {
		panic("unexpected call to PostStore.GetByIDWithUser")
	}
	return s.getByIDWithUserFn(ctx, id)
}

func (s *stubPostStore) GetAll(ctx context.Context) ([]domain.Post, error) {
	if s.getAllFn == nil {
		panic("unexpected call to PostStore.GetAll")
	}
	return s.getAllFn(ctx)
}

func (s *stubPostStore) GetAllWithUsers(ctx context.Context) ([]domain.PostWithUser, error) {
	if s.getAllWithUsersFn == nil {
		panic("unexpected call to PostStore.GetAllWithUsers")
	}
	return s.getAllWithUsersFn(ctx)
}

func (s *stubPostStore) GetByUserID(ctx context.Context, userID int64) ([]domain.Post, error) {
	if s.getByUserIDFn == nil {
		panic("unexpected call to PostStore.GetByUserID")
	}
	return s.getByUserIDFn(ctx, userID)
}

func (s *stubPostStore) Update(ctx context.Context, id int64, update store.PostUpdate) (bool, error) {
	if s.updateFn == nil {
		panic("unexpected call to PostStore.Update")
	}
	return s.updateFn(ctx, id, update)
}

func (s *stubPostStore) Delete(ctx context.Context, id int64) (bool, error) {
	if s.deleteFn == nil {
		panic("unexpected call to PostStore.Delete")
	}
	return s.deleteFn(ctx, id)
}

type stubCommentStore struct {
	createFn                 func(ctx context.Context, postID, userID int64, content string) (*domain.Comment, error)
	getByIDFn                func(ctx context.Context, id int64) (*domain.Comment, error)
	getByIDWithUserFn        func(ctx context.Context, id int64) (*domain.CommentWithUser, error)
	getByIDWithPostAndUserFn func(ctx context.Context, id int64) (*domain.CommentWithPostAndUser, error)
	getByPostIDFn            func(ctx context.Context, postID int64) ([]domain.Comment, error)
	getByUserIDFn            func(ctx context.Context, userID int64) ([]domain.Comment, error)
	getByPostIDWithUsersFn   func(ctx context.Context, postID int64) ([]domain.CommentWithUser, error)
	getByUserIDWithPostsFn   func(ctx context.Context, userID int64) ([]domain.CommentWithPostAndUser, error)
	deleteFn                 func(ctx context.Context, id int64) (bool, error)
}

var _ store.CommentStore = (*stubCommentStore)(nil)

func (s *stubCommentStore) Create(ctx context.Context, postID, userID int64, content string) (*domain.Comment, error) {
	if s.createFn == nil {
		panic("unexpected call to CommentStore.Create")
	}
	return s.createFn(ctx, postID, userID, content)
}

func (s *stubCommentStore) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	if s.getByIDFn == nil {
		panic("unexpected call to CommentStore.GetByID")
	}
	return s.getByIDFn(ctx, id)
}

func (s *stubCommentStore) GetByIDWithUser(ctx context.Context, id int64) (*domain.CommentWithUser, error) {
	if s.getByIDWithUserFn == nil {
		panic("unexpected call to CommentStore.GetByIDWithUser")
	}
	return s.getByIDWithUserFn(ctx, id)
}

func (s *stubCommentStore) GetByIDWithPostAndUser(ctx context.Context, id int64) (*domain.CommentWithPostAndUser, error) {
	if s.getByIDWithPostAndUserFn == nil {
		panic("unexpected call to CommentStore.GetByIDWithPostAndUser")
	}
	return s.getByIDWithPostAndUserFn(ctx, id)
}

func (s *stubCommentStore) GetByPostID(ctx context.Context, postID int64) ([]domain.Comment, error) {
	if s.getByPostIDFn == nil {
		panic("unexpected call to CommentStore.GetByPostID")
	}
	return s.getByPostIDFn(ctx, postID)
}

func (s *stubCommentStore) GetByUserID(ctx context.Context, userID int64) ([]domain.Comment, error) {
	if s.getByUserIDFn == nil {
		panic("unexpected call to CommentStore.GetByUserID")
	}
	return s.getByUserIDFn(ctx, userID)
}

func (s *stubCommentStore) GetByPostIDWithUsers(ctx context.Context, postID int64) ([]domain.CommentWithUser, error) {
	if s.getByPostIDWithUsersFn == nil {
		panic("unexpected call to CommentStore.GetByPostIDWithUsers")
	}
	return s.getByPostIDWithUsersFn(ctx, postID)
}

func (s *stubCommentStore) GetByUserIDWithPosts(ctx context.Context, userID int64) ([]domain.CommentWithPostAndUser, error) {
	if s.getByUserIDWithPostsFn == nil {
		panic("unexpected call to CommentStore.GetByUserIDWithPosts")
	}
	return s.getByUserIDWithPostsFn(ctx, userID)
}

func (s *stubCommentStore) Delete(ctx context.Context, id int64) (bool, error) {
	if s.deleteFn == nil {
		panic("unexpected call to CommentStore.Delete")
	}
	return s.deleteFn(ctx, id)
}
