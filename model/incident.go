// Package model - Incident and Feed define the shape of the incidencias.json feed.
package model

// Incident is one reported disruption on a rail subnetwork. Incidents are
// supplied by the feed and never mutated by the board.
type Incident struct {
	ID                  string   `json:"id,omitempty"`
	Network             Network  `json:"network"`
	Status              Status   `json:"status"`
	SeverityLevel       Severity `json:"severity_level,omitempty"` // 1..5, 0 when absent
	LineAffected        string   `json:"line_affected,omitempty"`
	Nodes               []string `json:"nodes,omitempty"`
	Summary             string   `json:"summary,omitempty"`
	Description         string   `json:"description,omitempty"`
	DescripcionOriginal string   `json:"descripcion_original,omitempty"` // untranslated ADIF text
	StartDate           string   `json:"start_date,omitempty"`           // opaque, displayed verbatim
	EndDate             string   `json:"end_date,omitempty"`
	LocationType        string   `json:"location_type,omitempty"`  // STATION, SEGMENT, LINE, AREA
	CauseCategory       string   `json:"cause_category,omitempty"` // OBRAS, ACCIDENTE, METEO, ...
	TransportBackup     bool     `json:"transport_backup,omitempty"`
	FirstSeen           string   `json:"primera_vez_visto,omitempty"`
	LastSeen            string   `json:"ultima_vez_visto,omitempty"`
}

// Feed is the top level incidencias.json payload
type Feed struct {
	GeneratedAt string     `json:"generated_at"` // freshness marker, compared by equality only
	Total       int        `json:"total,omitempty"`
	Incidencias []Incident `json:"incidencias"`
}

// Incidents returns the feed's incident list, never nil
func (f *Feed) Incidents() []Incident {
	if f == nil || f.Incidencias == nil {
		return []Incident{}
	}
	return f.Incidencias
}
