package rest

import "pai/domain"

type ItemsResponse struct {
	Items []*domain.Item `json:"items"`
	Count int            `json:"count"`
}

type StatusResponse struct {
	Status        string         `json:"status"`
	Version       string         `json:"version"`
	UptimeSeconds int64          `json:"uptime_seconds"`
	TotalItems    int            `json:"total_items"`
	ByKind        map[string]int `json:"by_kind"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
