package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/edenhub/eden-web/app/types"
)

func funcs() template.FuncMap {
	return template.FuncMap{
		"add":        func(a, b int) int { return a + b },
		"seq":        seq,
		"dict":       dict,
		"json":       toJSON,
		"datetime":   formatTime,
		"lockBadge":  lockBadge,
		"roleLabels": roleLabels,
		"lower":      strings.ToLower,
		"deref":      deref,
		"classColor": types.ClassColor,
		"classes":    func() []string { return types.Classes },
		"roles":      func() []types.Role { return types.Roles },
		"difficulties": func() []types.Difficulty {
			return types.Difficulties
		},
		"signupTypes": func() []types.SignupType { return types.SignupTypes },
		"runBadge":    runBadge,
		"query":       func(s string) template.URL { return template.URL(s) },
	}
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict needs key/value pairs")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "Unscheduled"
	}
	return t.Local().Format("Mon Jan 2, 15:04")
}

// lockBadge maps a lock status to the G/Y/R badge colour class.
func lockBadge(s types.LockStatus) string {
	switch s {
	case types.LockLocked:
		return "badge-r"
	case types.LockPending:
		return "badge-y"
	default:
		return "badge-g"
	}
}

func roleLabels(roles []types.Role) string {
	initials := make([]string, 0, len(roles))
	for _, r := range roles {
		initials = append(initials, r.Initial())
	}
	return strings.Join(initials, "/")
}

func deref(p *int) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *p)
}

// runBadge maps a run status to its badge colour class.
func runBadge(s types.RunStatus) string {
	switch s {
	case types.RunActive:
		return "badge-g"
	case types.RunPending:
		return "badge-y"
	default:
		return "badge-b"
	}
}
