// Package model - API types shared by the presenter, REST handlers and GraphQL resolvers
package model

// Counters are the aggregate counts shown above the incident table
type Counters struct {
	Total  int `json:"total"`
	Red    int `json:"red"`    // status RED (interruption)
	Yellow int `json:"yellow"` // status YELLOW (delays)
}

// IncidentRow is one rendered table row. Every field is already display-ready.
type IncidentRow struct {
	StatusCode          string `json:"status_code"`
	Status              string `json:"status"`
	StatusClass         string `json:"status_class"`
	Network             string `json:"network"`
	Line                string `json:"line"`
	Nodes               string `json:"nodes"`
	Summary             string `json:"summary"`
	OriginalDescription string `json:"original_description"`
	Severity            int    `json:"severity"` // filled dots, 1..5
	StartDate           string `json:"start_date"`
}

// IncidentsResponse is the response for GET /api/v1/incidents
type IncidentsResponse struct {
	GeneratedAt string        `json:"generated_at"`
	LastUpdate  string        `json:"last_update"`
	Counters    Counters      `json:"counters"`
	Rows        []IncidentRow `json:"rows"`
}

// FilterRequest is the body for PUT /api/v1/filters
type FilterRequest struct {
	Search  string `json:"search"`
	Network string `json:"network"`
	Status  string `json:"status"`
}
