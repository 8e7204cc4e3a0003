package request

type AutoRefreshRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
