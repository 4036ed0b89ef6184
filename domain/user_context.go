package domain

import (
	"context"
	"errors"
)

// UserContext represents the authenticated user for a request
type UserContext struct {
	UserID      int64  `json:"user_id"`
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
}

func (uc *UserContext) IsValid() bool {
	return uc != nil && uc.UserID > 0 && uc.Username != ""
}

// CanEdit reports whether the user may modify the given post.
func (uc *UserContext) CanEdit(p *Post) bool {
	if !uc.IsValid() || p == nil {
		return false
	}
	return uc.IsSuperuser || uc.UserID == p.AuthorID
}

type contextKey string

const UserContextKey contextKey = "user_context"

func GetUserFromContext(ctx context.Context) (*UserContext, error) {
	user, ok := ctx.Value(UserContextKey).(*UserContext)
	if !ok || user == nil {
		return nil, errors.New("user context not found")
	}
	if !user.IsValid() {
		return nil, errors.New("invalid user context")
	}
	return user, nil
}

func SetUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}
