package post_usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/hqpr/simple-blog/domain"
	"github.com/hqpr/simple-blog/port/category_port"
	"github.com/hqpr/simple-blog/port/fragment_cache_port"
	"github.com/hqpr/simple-blog/port/post_port"
	apperrors "github.com/hqpr/simple-blog/utils/errors"
	"github.com/hqpr/simple-blog/utils/logger"
	"github.com/hqpr/simple-blog/utils/validator"
)

type PostDetail struct {
	Post *domain.Post
	// IsOwner is true when the viewer wrote the post.
	IsOwner bool
	CanEdit bool
}

// PostForm carries what the add and edit pages show. Post is nil on the add page.
type PostForm struct {
	Post       *domain.Post
	Categories []domain.Category
}

type PostUsecase struct {
	postPort          post_port.PostPort
	fetchCategoryPort category_port.FetchCategoryPort
	cachePort         fragment_cache_port.FragmentCachePort
	validator         *validator.Validator
}

func NewPostUsecase(
	postPort post_port.PostPort,
	fetchCategoryPort category_port.FetchCategoryPort,
	cachePort fragment_cache_port.FragmentCachePort,
) *PostUsecase {
	return &PostUsecase{
		postPort:          postPort,
		fetchCategoryPort: fetchCategoryPort,
		cachePort:         cachePort,
		validator:         validator.New(),
	}
}

// GetPost returns a post for display. Drafts are only visible to users who may edit them.
func (u *PostUsecase) GetPost(ctx context.Context, id int64, viewer *domain.UserContext) (*PostDetail, error) {
	ctx = logger.WithPostID(ctx, strconv.FormatInt(id, 10))

	post, err := u.postPort.FetchPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	canEdit := viewer.CanEdit(post)
	if !post.Published && !canEdit {
		logger.Logger.InfoContext(ctx, "draft hidden from viewer", "post_id", id)
		return nil, apperrors.NotFoundError("post not found", domain.ErrPostNotFound, map[string]interface{}{"post_id": id})
	}

	return &PostDetail{
		Post:    post,
		IsOwner: viewer.IsValid() && viewer.UserID == post.AuthorID,
		CanEdit: canEdit,
	}, nil
}

// NewPostForm prepares an empty form for a signed-in user.
func (u *PostUsecase) NewPostForm(ctx context.Context, user *domain.UserContext) (*PostForm, error) {
	if !user.IsValid() {
		return nil, apperrors.UnauthorizedError("authentication required", domain.ErrUnauthorized, nil)
	}
	categories, err := u.fetchCategoryPort.FetchCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &PostForm{Categories: categories}, nil
}

// EditPostForm prepares a form filled with the post. The same rule as UpdatePost applies.
func (u *PostUsecase) EditPostForm(ctx context.Context, user *domain.UserContext, id int64) (*PostForm, error) {
	if !user.IsValid() {
		return nil, apperrors.UnauthorizedError("authentication required", domain.ErrUnauthorized, nil)
	}
	ctx = logger.WithPostID(ctx, strconv.FormatInt(id, 10))

	post, err := u.postPort.FetchPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.CanEdit(post) {
		logger.Logger.WarnContext(ctx, "edit form refused", "post_id", id, "user_id", user.UserID)
		return nil, apperrors.ForbiddenError("not allowed to edit this post", domain.ErrForbidden,
			map[string]interface{}{"post_id": id, "user_id": user.UserID})
	}

	categories, err := u.fetchCategoryPort.FetchCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &PostForm{Post: post, Categories: categories}, nil
}

func (u *PostUsecase) CreatePost(ctx context.Context, user *domain.UserContext, draft domain.PostDraft) (*domain.Post, error) {
	if !user.IsValid() {
		return nil, apperrors.UnauthorizedError("authentication required", domain.ErrUnauthorized, nil)
	}
	if err := u.validate(ctx, draft); err != nil {
		return nil, err
	}

	post, err := u.postPort.CreatePost(ctx, user.UserID, draft)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to create post", "error", err, "author_id", user.UserID)
		return nil, err
	}
	u.cachePort.PurgeFragments(ctx)

	logger.Logger.InfoContext(ctx, "post created", "post_id", post.ID, "author_id", user.UserID, "published", post.Published)
	return post, nil
}

// UpdatePost edits a post. Only the author or a superuser may do so.
func (u *PostUsecase) UpdatePost(ctx context.Context, user *domain.UserContext, id int64, draft domain.PostDraft) (*domain.Post, error) {
	if !user.IsValid() {
		return nil, apperrors.UnauthorizedError("authentication required", domain.ErrUnauthorized, nil)
	}
	ctx = logger.WithPostID(ctx, strconv.FormatInt(id, 10))

	existing, err := u.postPort.FetchPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.CanEdit(existing) {
		logger.Logger.WarnContext(ctx, "edit refused", "post_id", id, "user_id", user.UserID)
		return nil, apperrors.ForbiddenError("not allowed to edit this post", domain.ErrForbidden,
			map[string]interface{}{"post_id": id, "user_id": user.UserID})
	}
	if err := u.validate(ctx, draft); err != nil {
		return nil, err
	}

	post, err := u.postPort.UpdatePost(ctx, id, draft)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to update post", "error", err, "post_id", id)
		return nil, err
	}
	u.cachePort.PurgeFragments(ctx)

	logger.Logger.InfoContext(ctx, "post updated", "post_id", id, "user_id", user.UserID)
	return post, nil
}

func (u *PostUsecase) validate(ctx context.Context, draft domain.PostDraft) error {
	if err := u.validator.Validate(draft); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return apperrors.ValidationError(verr.Error(), map[string]interface{}{"fields": verr.Errors})
		}
		return apperrors.ValidationError(err.Error(), nil)
	}
	if len(draft.CategoryIDs) == 0 {
		return nil
	}

	categories, err := u.fetchCategoryPort.FetchCategories(ctx)
	if err != nil {
		return err
	}
	known := make(map[int64]struct{}, len(categories))
	for _, c := range categories {
		known[c.ID] = struct{}{}
	}
	for _, id := range draft.CategoryIDs {
		if _, ok := known[id]; !ok {
			return apperrors.ValidationError(fmt.Sprintf("%v: %d", domain.ErrCategoryNotFound, id),
				map[string]interface{}{"category_id": id})
		}
	}
	return nil
}
