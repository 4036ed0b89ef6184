package render_port

import "github.com/hqpr/simple-blog/domain"

//go:generate go run go.uber.org/mock/mockgen -source=render_port.go -destination=../../mocks/mock_render_port.go -package=mocks

type RenderPostsPort interface {
	RenderPosts(posts []*domain.Post) (string, error)
}
