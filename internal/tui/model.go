// Package tui renders the dashboard as a terminal deck of chart panels
// driven by Bubble Tea. All data comes from a single LogQuerier; panels
// render from one shared snapshot rebuilt after each fetch.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/prismview/prism/internal/model"
	"github.com/prismview/prism/internal/query"
)

// TickMsg drives the periodic refresh.
type TickMsg time.Time

// dataLoadedMsg carries one completed fetch. generation tells the model
// whether the fetch is stale (a newer one was started after it).
type dataLoadedMsg struct {
	generation int
	records    []model.LogRecord
	stats      model.ScanStats
	err        error
}

// Options configures the dashboard.
type Options struct {
	Store           model.LogQuerier
	Query           string
	Limit           int
	RefreshInterval time.Duration
	Thresholds      model.DriftThresholds
	Logger          *zap.Logger
}

// DashboardModel is the top-level Bubble Tea model.
type DashboardModel struct {
	store      model.LogQuerier
	log        *zap.Logger
	thresholds model.DriftThresholds

	queryInput textinput.Model
	queryText  string
	limit      int

	refreshInterval time.Duration
	generation      int
	fetchInFlight   bool
	paused          bool

	snap        *snapshot
	lastError   string
	lastRefresh time.Time

	panels      []Panel
	activePanel int
	editing     bool

	width  int
	height int
}

// NewDashboardModel builds the dashboard with its fixed panel deck.
func NewDashboardModel(opts Options) *DashboardModel {
	ti := textinput.New()
	ti.Placeholder = "level = ERROR AND service : api"
	ti.CharLimit = 256
	ti.SetValue(opts.Query)

	limit := opts.Limit
	if limit <= 0 {
		limit = model.DefaultQueryLimit
	}
	interval := opts.RefreshInterval
	if interval <= 0 {
		interval = model.DefaultDashboardRefresh
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &DashboardModel{
		store:           opts.Store,
		log:             log,
		thresholds:      opts.Thresholds,
		queryInput:      ti,
		queryText:       opts.Query,
		limit:           limit,
		refreshInterval: interval,
		panels: []Panel{
			&LevelsPanel{},
			&TimelinePanel{},
			&ServicesPanel{},
			&HostsPanel{},
			&ActivityPanel{},
			&GaugesPanel{},
			&DriftPanel{},
		},
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.startFetch(), m.tick())
}

func (m *DashboardModel) tick() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// startFetch bumps the generation and launches a query. Results from
// any earlier generation are discarded when they arrive.
func (m *DashboardModel) startFetch() tea.Cmd {
	m.generation++
	m.fetchInFlight = true
	gen := m.generation
	store := m.store
	req := model.QueryRequest{Query: m.effectiveQuery(), Limit: m.limit}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		records, stats, err := store.Query(ctx, req)
		return dataLoadedMsg{generation: gen, records: records, stats: stats, err: err}
	}
}

func (m *DashboardModel) effectiveQuery() string {
	text := m.queryText
	if text == "" {
		return model.MatchAll
	}
	return text
}

// applyQuery validates the edited query text. Invalid input keeps the
// previous query and surfaces the validation error inline.
func (m *DashboardModel) applyQuery(text string) bool {
	if text == "" {
		m.queryText = ""
		m.lastError = ""
		return true
	}
	res := query.Validate(text)
	if !res.Valid {
		m.lastError = res.Error
		return false
	}
	m.queryText = text
	m.lastError = ""
	return true
}
