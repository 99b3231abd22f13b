package internal

import (
	"strconv"
	"strings"
)

// Counter keys
const (
	CounterTotalUsers   = "total_users"
	CounterActiveUsers  = "active_users"
	CounterTotalChats   = "total_chats"
	CounterCodeSnippets = "code_snippets"
	CounterUserRating   = "user_rating"
	statsInitializedKey = "stats_initialized"
)

// Activity names accepted by TrackActivity
const (
	ActivityRegister = "register"
	ActivityLogin    = "login"
	ActivityChat     = "chat"
	ActivityCode     = "code"
)

var counterSeeds = []struct {
	key   string
	value string
}{
	{CounterTotalUsers, "850"},
	{CounterActiveUsers, "850"},
	{CounterTotalChats, "15640"},
	{CounterCodeSnippets, "9384"},
	{CounterUserRating, "4.9"},
}

// RealTimeStats is a snapshot of the simulated analytics counters
type RealTimeStats struct {
	TotalUsers   int     `json:"totalUsers" yaml:"total_users"`
	ActiveUsers  int     `json:"activeUsers" yaml:"active_users"`
	TotalChats   int     `json:"totalChats" yaml:"total_chats"`
	CodeSnippets int     `json:"codeSnippets" yaml:"code_snippets"`
	UserRating   float64 `json:"userRating" yaml:"user_rating"`
}

// Tracker keeps named counters in the store. Read-modify-write is not
// atomic across processes; a single session process is assumed.
type Tracker struct {
	store Store
}

// NewTracker creates a Tracker over store
func NewTracker(store Store) *Tracker {
	return &Tracker{store: store}
}

// Init seeds the counters once per store
func (t *Tracker) Init() error {
	if Has(t.store, statsInitializedKey) {
		return nil
	}
	for _, seed := range counterSeeds {
		if err := t.store.Set(seed.key, seed.value); err != nil {
			return err
		}
	}
	LogDebug("Seeded analytics counters")
	return t.store.Set(statsInitializedKey, "true")
}

// Get returns the integer counter name, or def when absent or unparsable
func (t *Tracker) Get(name string, def int) int {
	raw, found, err := t.store.Get(name)
	if err != nil || !found {
		return def
	}
	v, ok := leadingInt(raw)
	if !ok {
		return def
	}
	return v
}

// leadingInt parses the integer prefix of s, so "12.0" and "12abc" both
// read as 12. It reports false when s does not start with a number.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

// GetFloat returns the float counter name, or def when absent or unparsable
func (t *Tracker) GetFloat(name string, def float64) float64 {
	raw, found, err := t.store.Get(name)
	if err != nil || !found {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return def
	}
	return v
}

// Set writes an integer counter
func (t *Tracker) Set(name string, value int) error {
	return t.store.Set(name, strconv.Itoa(value))
}

// Increment adds one to counter name and returns the new value
func (t *Tracker) Increment(name string) (int, error) {
	next := t.Get(name, 0) + 1
	if err := t.Set(name, next); err != nil {
		return 0, err
	}
	return next, nil
}

// TrackActivity bumps the counters tied to an activity. Unknown activities
// are ignored.
func (t *Tracker) TrackActivity(activity string) error {
	switch activity {
	case ActivityRegister:
		total, err := t.Increment(CounterTotalUsers)
		if err != nil {
			return err
		}
		return t.Set(CounterActiveUsers, total)
	case ActivityLogin:
		_, err := t.Increment(CounterActiveUsers)
		return err
	case ActivityChat:
		_, err := t.Increment(CounterTotalChats)
		return err
	case ActivityCode:
		_, err := t.Increment(CounterCodeSnippets)
		return err
	default:
		LogDebug("Ignoring unknown activity %q", activity)
		return nil
	}
}

// Stats reads all counters, falling back to the seed values
func (t *Tracker) Stats() RealTimeStats {
	return RealTimeStats{
		TotalUsers:   t.Get(CounterTotalUsers, 850),
		ActiveUsers:  t.Get(CounterActiveUsers, 850),
		TotalChats:   t.Get(CounterTotalChats, 15640),
		CodeSnippets: t.Get(CounterCodeSnippets, 9384),
		UserRating:   t.GetFloat(CounterUserRating, 4.9),
	}
}
