package stats

type StatsResponse struct {
	MedianValue *float64 `json:"median_value"`
	Message     string   `json:"message"`
}
