package incidents

import (
	"github.com/ortelius/railwatch-board/internal/filter"
	"github.com/ortelius/railwatch-board/model"
	"github.com/ortelius/railwatch-board/util"
)

// Source is the read side of the dashboard the resolvers query
type Source interface {
	View(criteria filter.Criteria) ([]model.Incident, model.Counters)
	Marker() string
	LastUpdate() string
}

func criteriaFromArgs(args map[string]interface{}) filter.Criteria {
	str := func(key string) string {
		if v, ok := args[key].(string); ok {
			return v
		}
		return ""
	}
	return filter.Criteria{
		Search:  str("search"),
		Network: str("network"),
		Status:  str("status"),
	}
}

// ResolveIncidents returns the ad-hoc filtered view, in feed order
func ResolveIncidents(src Source, criteria filter.Criteria) []map[string]interface{} {
	view, _ := src.View(criteria)

	results := make([]map[string]interface{}, 0, len(view))
	for _, inc := range view {
		nodes := inc.Nodes
		if nodes == nil {
			nodes = []string{}
		}
		results = append(results, map[string]interface{}{
			"id":                           inc.ID,
			"network":                      string(inc.Network),
			"network_label":                util.DisplayNetwork(inc),
			"status":                       string(inc.Status),
			"status_label":                 util.DisplayStatus(inc),
			"severity_level":               int(inc.SeverityLevel),
			"line_affected":                inc.LineAffected,
			"nodes":                        nodes,
			"summary":                      inc.Summary,
			"description":                  inc.Description,
			"descripcion_original":         inc.DescripcionOriginal,
			"start_date":                   inc.StartDate,
			"end_date":                     inc.EndDate,
			"location_type":                inc.LocationType,
			"cause_category":               inc.CauseCategory,
			"transport_backup":             inc.TransportBackup,
			"primera_vez_visto":            inc.FirstSeen,
			"ultima_vez_visto":             inc.LastSeen,
			"display_summary":              util.DisplaySummary(inc),
			"display_original_description": util.DisplayOriginalDescription(inc),
			"display_severity":             util.DisplaySeverity(inc),
		})
	}
	return results
}

// ResolveCounters returns the counters of the ad-hoc filtered view
func ResolveCounters(src Source, criteria filter.Criteria) map[string]interface{} {
	_, counters := src.View(criteria)
	return map[string]interface{}{
		"total":  counters.Total,
		"red":    counters.Red,
		"yellow": counters.Yellow,
	}
}

// ResolveFreshness returns the raw and formatted marker of the loaded feed
func ResolveFreshness(src Source) map[string]interface{} {
	return map[string]interface{}{
		"generated_at": src.Marker(),
		"last_update":  src.LastUpdate(),
	}
}

// ResolveNetworks lists the known network codes
func ResolveNetworks() []map[string]interface{} {
	results := make([]map[string]interface{}, 0, len(model.Networks))
	for _, n := range model.Networks {
		results = append(results, map[string]interface{}{"code": string(n), "label": n.Label()})
	}
	return results
}

// ResolveStatuses lists the known status codes
func ResolveStatuses() []map[string]interface{} {
	results := make([]map[string]interface{}, 0, len(model.Statuses))
	for _, s := range model.Statuses {
		results = append(results, map[string]interface{}{"code": string(s), "label": s.Label()})
	}
	return results
}
