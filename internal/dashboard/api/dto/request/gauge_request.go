package request

type GaugeRequest struct {
	Value *int `json:"value" binding:"required,gte=0,lte=100"`
}
