package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/runoshun/taskpulse/internal/domain"
)

// timeLayouts are tried in order; layouts without a zone use local time.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// parseTime parses a timestamp flag.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		var (
			t   time.Time
			err error
		)
		if layout == time.RFC3339 {
			t, err = time.Parse(layout, s)
		} else {
			t, err = time.ParseInLocation(layout, s, time.Local)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q (expected RFC3339, YYYY-MM-DD or YYYY-MM-DD HH:MM)", s)
}

// parseOptionalTime parses a flag value, returning nil for an empty value.
func parseOptionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseTime(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseHourWindow parses "9-12" into an hour window.
func parseHourWindow(s string) (domain.HourWindow, error) {
	startStr, endStr, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return domain.HourWindow{}, fmt.Errorf("%q: %w", s, domain.ErrInvalidHourWindow)
	}
	start, err1 := strconv.Atoi(strings.TrimSpace(startStr))
	end, err2 := strconv.Atoi(strings.TrimSpace(endStr))
	if err := errors.Join(err1, err2); err != nil {
		return domain.HourWindow{}, fmt.Errorf("%q: %w", s, domain.ErrInvalidHourWindow)
	}
	return domain.HourWindow{Start: start, End: end}, nil
}

// parseWeights parses "deadline,priority,complexity".
func parseWeights(s string) (*domain.WeightPreferences, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%q: %w", s, domain.ErrInvalidWeights)
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, domain.ErrInvalidWeights)
		}
		v[i] = f
	}
	return &domain.WeightPreferences{Deadline: v[0], Priority: v[1], Complexity: v[2]}, nil
}

// parseTiers parses tier names, rejecting AUTO.
func parseTiers(names []string) ([]domain.Tier, error) {
	tiers := make([]domain.Tier, 0, len(names))
	for _, n := range names {
		t, err := domain.ParseTier(n)
		if err != nil || !t.IsValid() {
			return nil, fmt.Errorf("%q: %w", n, domain.ErrInvalidTier)
		}
		tiers = append(tiers, t)
	}
	return tiers, nil
}

// optionalInt returns a pointer to v when the flag was set.
func optionalInt(set bool, v int) *int {
	if !set {
		return nil
	}
	return &v
}

// shortID abbreviates a UUID for tables.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
