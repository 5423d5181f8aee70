package sales

import (
	"errors"
	"sort"
	"sync"
)

// ErrNotFound is returned when a report with the given ID is not found.
var ErrNotFound = errors.New("report not found")

// ErrEmptyID is returned when trying to store a report with an empty ID.
var ErrEmptyID = errors.New("empty report ID")

// Storage keeps rendered reports for the lifetime of the process.
type Storage interface {
	Set(report *Report) error
	Read(id string) (*Report, error)
	GetAll() ([]*Report, error)
}

// LocalStorage provides an in-memory implementation for storing reports.
type LocalStorage struct {
	mu sync.RWMutex
	m  map[string]*Report
}

// NewLocalStorage instantiates a new LocalStorage with an empty map.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{
		m: map[string]*Report{},
	}
}

// Set stores the report under its ID.
// Returns ErrEmptyID if the report has an empty ID.
func (l *LocalStorage) Set(report *Report) error {
	if report.ID == "" {
		return ErrEmptyID
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m[report.ID] = report
	return nil
}

// Read retrieves a report by ID.
// Returns ErrNotFound if the report is not found.
func (l *LocalStorage) Read(id string) (*Report, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.m[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// GetAll retrieves all reports, oldest first.
func (l *LocalStorage) GetAll() ([]*Report, error) {
	l.mu.RLock()
	reports := make([]*Report, 0, len(l.m))
	for _, r := range l.m {
		reports = append(reports, r)
	}
	l.mu.RUnlock()

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})
	return reports, nil
}
