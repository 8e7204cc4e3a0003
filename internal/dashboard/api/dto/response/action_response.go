package response

type ActionResult struct {
	Action         string `json:"action"`
	Success        bool   `json:"success"`
	Data           any    `json:"data,omitempty"`
	Error          string `json:"error,omitempty"`
	ResponseTimeMs int64  `json:"response_time_ms"`
}

type PingResponse struct {
	Service string `json:"service"`
	Online  bool   `json:"online"`
}
