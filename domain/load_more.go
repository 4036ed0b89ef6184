package domain

// LoadMoreResponse is the JSON body answered to a load-more request.
type LoadMoreResponse struct {
	PostsHTML string `json:"posts_html"`
	HasNext   bool   `json:"has_next"`
}
