// Package filter derives the filtered incident view from the full dataset.
package filter

import (
	"strings"

	"github.com/ortelius/railwatch-board/model"
	"github.com/ortelius/railwatch-board/util"
)

// Criteria are the three independent filter controls. Empty fields match everything.
type Criteria struct {
	Search  string `json:"search"`
	Network string `json:"network"`
	Status  string `json:"status"`
}

// IsZero reports whether no criterion is active
func (c Criteria) IsZero() bool {
	return strings.TrimSpace(c.Search) == "" && c.Network == "" && c.Status == ""
}

// Options tune how the search term is compared
type Options struct {
	FoldAccents bool
}

// Engine applies criteria to a dataset. The zero value is usable.
type Engine struct {
	opts Options
}

// NewEngine creates an engine with the given options
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Apply returns every incident matching all active criteria, in dataset order.
// The result is a fresh slice, the input is never modified.
func (e *Engine) Apply(incidents []model.Incident, c Criteria) []model.Incident {
	term := util.NormalizeSearchTerm(c.Search, e.opts.FoldAccents)

	out := make([]model.Incident, 0, len(incidents))
	for i := range incidents {
		if e.matches(&incidents[i], term, c.Network, c.Status) {
			out = append(out, incidents[i])
		}
	}
	return out
}

// Matches reports whether a single incident satisfies c
func (e *Engine) Matches(inc model.Incident, c Criteria) bool {
	term := util.NormalizeSearchTerm(c.Search, e.opts.FoldAccents)
	return e.matches(&inc, term, c.Network, c.Status)
}

func (e *Engine) matches(inc *model.Incident, term, network, status string) bool {
	if term != "" && !strings.Contains(e.searchable(inc), term) {
		return false
	}
	if network != "" && string(inc.Network) != network {
		return false
	}
	if status != "" && string(inc.Status) != status {
		return false
	}
	return true
}

// searchable is summary, description, line and nodes joined by spaces, folded
func (e *Engine) searchable(inc *model.Incident) string {
	parts := []string{
		inc.Summary,
		inc.Description,
		inc.LineAffected,
		strings.Join(inc.Nodes, " "),
	}
	return util.FoldText(strings.Join(parts, " "), e.opts.FoldAccents)
}

// Apply filters with default options
func Apply(incidents []model.Incident, c Criteria) []model.Incident {
	return (&Engine{}).Apply(incidents, c)
}
