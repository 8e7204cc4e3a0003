package access

import (
	"context"
	"fmt"
	"math"
	"sync"
)

type Status string

const (
	StatusOnline   Status = "online"
	StatusOffline  Status = "offline"
	StatusChecking Status = "checking"
)

// Outcome is the result of one call to a named backend. Data holds the payload when online
// and the normalized failure message when offline.
type Outcome struct {
	Service string `json:"service"`
	Status  Status `json:"status"`
	Data    any    `json:"data"`
}

type NamedCall struct {
	Name string
	Call Call[any]
}

type AggregateStatus struct {
	Total            int `json:"total_services"`
	Online           int `json:"online_services"`
	Offline          int `json:"offline_services"`
	HealthPercentage int `json:"health_percentage"`
}

// CheckAllServices runs every call concurrently and waits for all of them to settle.
// The result has one outcome per call, in input order.
func CheckAllServices(ctx context.Context, calls []NamedCall) []Outcome {
	outcomes := make([]Outcome, len(calls))
	var wg sync.WaitGroup
	wg.Add(len(calls))
	for i, nc := range calls {
		go func(i int, nc NamedCall) {
			defer wg.Done()
			outcomes[i] = settle(ctx, nc)
		}(i, nc)
	}
	wg.Wait()
	return outcomes
}

func settle(ctx context.Context, nc NamedCall) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{
				Service: nc.Name,
				Status:  StatusOffline,
				Data:    NormalizeError(fmt.Errorf("panic: %v", r)),
			}
		}
	}()
	data, err := nc.Call(ctx)
	if err != nil {
		return Outcome{
			Service: nc.Name,
			Status:  StatusOffline,
			Data:    NormalizeError(err),
		}
	}
	return Outcome{
		Service: nc.Name,
		Status:  StatusOnline,
		Data:    data,
	}
}

func Summarize(outcomes []Outcome) AggregateStatus {
	total := len(outcomes)
	if total == 0 {
		return AggregateStatus{}
	}
	online := 0
	for _, o := range outcomes {
		if o.Status == StatusOnline {
			online++
		}
	}
	return AggregateStatus{
		Total:            total,
		Online:           online,
		Offline:          total - online,
		HealthPercentage: int(math.Round(100 * float64(online) / float64(total))),
	}
}
