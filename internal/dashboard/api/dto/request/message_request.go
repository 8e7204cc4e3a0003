package request

type MessageRequest struct {
	Message string `json:"message" binding:"required,max=10000"`
}
