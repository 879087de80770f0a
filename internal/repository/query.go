package repository

import (
	"fmt"
	"strings"
)

// Where accumulates AND-ed conditions with positional arguments.
type Where struct {
	conds []string
	args  []any
}

// Add appends a condition. Each "?" in cond is replaced with the next placeholder.
func (w *Where) Add(cond string, args ...any) {
	for _, a := range args {
		w.args = append(w.args, a)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

// SQL renders the WHERE clause, or an empty string when there are no conditions.
func (w *Where) SQL() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds, " AND ")
}

// Args returns the collected arguments.
func (w *Where) Args() []any {
	return w.args
}

// Next returns the placeholder for an argument appended after the conditions.
func (w *Where) Next(arg any) string {
	w.args = append(w.args, arg)
	return fmt.Sprintf("$%d", len(w.args))
}
