package domain

import "errors"

// Domain errors.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrSubTaskNotFound   = errors.New("subtask not found")
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrInvalidTier       = errors.New("invalid tier (expected LOW, MID, HIGH or AUTO)")
	ErrInvalidTierFilter = errors.New("invalid tier filter (expected ALL, LOW, MID or HIGH)")
	ErrInvalidPriority   = errors.New("priority must be between 1 and 10")
	ErrInvalidRating     = errors.New("quality rating must be between 1 and 5")
	ErrInvalidMinutes    = errors.New("minutes cannot be negative")
	ErrInvalidCapacity   = errors.New("workload capacity cannot be negative")
	ErrInvalidHourWindow = errors.New("hour window must use hours between 0 and 24")
	ErrInvalidWeights    = errors.New("weight preferences must be non-negative with a positive sum")
	ErrInvalidDateRange  = errors.New("date range end is before start")
	ErrNotInitialized    = errors.New("taskpulse not initialized (run 'taskpulse init' first)")
	ErrConfigExists      = errors.New("config file already exists")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrUnknownStore      = errors.New("unknown store backend")
	ErrDuplicateUser     = errors.New("user already exists")
	ErrAmbiguousRef      = errors.New("reference matches more than one item")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
)
