package response

type Response struct {
	Message string `json:"message"`
}

// BackendResponse wraps a payload forwarded from a sandbox service.
type BackendResponse struct {
	StatusCode int `json:"status_code"`
	Data       any `json:"data"`
}
