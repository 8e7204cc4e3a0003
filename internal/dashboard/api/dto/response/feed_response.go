package response

import "VCS_Sandbox_Dashboard/internal/dashboard/monitor"

type FeedResponse struct {
	Enabled  bool                  `json:"enabled"`
	Messages []monitor.FeedMessage `json:"messages"`
}
