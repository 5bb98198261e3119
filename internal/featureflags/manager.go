// Package featureflags evaluates flags from a comma-separated config value,
// for example "realtime_feed=on,new_feed_ranking=25%". Percentage values roll
// a flag out deterministically per user, so a user keeps the same answer
// across requests.
package featureflags

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Manager answers flag queries. A nil Manager reports every flag as its
// default, which keeps call sites free of nil checks.
type Manager struct {
	flags map[string]string
}

// NewManager parses the raw flag list. Malformed pairs are skipped rather
// than rejected so a typo in one flag does not take the rest down.
func NewManager(raw string) *Manager {
	flags := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		name = normalize(name)
		value = normalize(value)
		if name == "" || value == "" {
			continue
		}
		flags[name] = value
	}
	return &Manager{flags: flags}
}

// Enabled reports whether a flag is on for the given user. Recognized
// values are on/true/1, off/false/0, and N% for a percentage rollout.
// Unknown flags and unrecognized values are off.
func (m *Manager) Enabled(name string, userID uint) bool {
	return m.EnabledOrDefault(name, userID, false)
}

// EnabledOrDefault is Enabled with a fallback for flags that are not
// configured at all. Features that ship enabled pass def=true so operators
// only have to set the flag to turn them off.
func (m *Manager) EnabledOrDefault(name string, userID uint, def bool) bool {
	if m == nil {
		return def
	}
	value, ok := m.flags[normalize(name)]
	if !ok {
		return def
	}

	switch value {
	case "on", "true", "1":
		return true
	case "off", "false", "0":
		return false
	}

	pctRaw, ok := strings.CutSuffix(value, "%")
	if !ok {
		return false
	}
	pct, err := strconv.Atoi(pctRaw)
	if err != nil || pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	if userID == 0 {
		return false
	}
	return rolloutBucket(name, userID) < pct
}

// Snapshot evaluates every configured flag for one user.
func (m *Manager) Snapshot(userID uint) map[string]bool {
	if m == nil {
		return map[string]bool{}
	}
	out := make(map[string]bool, len(m.flags))
	for name := range m.flags {
		out[name] = m.Enabled(name, userID)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// rolloutBucket maps a (flag, user) pair onto 0..99. FNV keeps buckets
// stable across restarts without any stored state.
func rolloutBucket(name string, userID uint) int {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s:%d", normalize(name), userID)
	return int(h.Sum32() % 100)
}
