package request

// SetKeyRequest stores a value. A zero TTL keeps the key forever.
type SetKeyRequest struct {
	Value      string `json:"value" binding:"required"`
	TTLSeconds int64  `json:"ttl_seconds" binding:"gte=0"`
}

type CounterRequest struct {
	Delta int64 `json:"delta" binding:"gte=0"`
}

type ExpireRequest struct {
	Seconds *int64 `json:"seconds" binding:"required,gte=1"`
}
