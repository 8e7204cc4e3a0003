package response

type KeyValueResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type KeysResponse struct {
	Keys []string `json:"keys"`
}

type ExistsResponse struct {
	Key    string `json:"key"`
	Exists bool   `json:"exists"`
}

type TTLResponse struct {
	Key string `json:"key"`
	TTL int64  `json:"ttl"`
}

type CounterResponse struct {
	Key   string `json:"key"`
	Value int64  `json:"value"`
}
