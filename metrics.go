package feedvalidator

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks validation performance metrics using lock-free atomic
// operations. All methods are safe for concurrent use.
type Metrics struct {
	// Record counts
	recordsTotal atomic.Uint64
	recordsValid atomic.Uint64

	// Timing (stored as nanoseconds)
	recordTimeTotal atomic.Uint64
	recordTimeMin   atomic.Uint64
	recordTimeMax   atomic.Uint64

	// Feed counts
	feedsTotal atomic.Uint64

	// Pool metrics
	poolAcquires atomic.Uint64
	poolReleases atomic.Uint64

	// Issue counts by severity
	errorsTotal   atomic.Uint64
	warningsTotal atomic.Uint64
	infosTotal    atomic.Uint64

	// Per-rule timing
	ruleTiming sync.Map // map[string]*ruleMetrics
}

// ruleMetrics tracks metrics for a single rule module.
type ruleMetrics struct {
	invocations atomic.Uint64
	totalTime   atomic.Uint64 // nanoseconds
	issuesFound atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so first value becomes the minimum
	m.recordTimeMin.Store(^uint64(0))
	return m
}

// --- Recording Methods ---

// RecordValidation records a completed record validation.
func (m *Metrics) RecordValidation(duration time.Duration, valid bool) {
	m.recordsTotal.Add(1)
	if valid {
		m.recordsValid.Add(1)
	}

	ns := uint64(duration.Nanoseconds())
	m.recordTimeTotal.Add(ns)

	// Update min (CAS loop)
	for {
		old := m.recordTimeMin.Load()
		if ns >= old {
			break
		}
		if m.recordTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}

	// Update max (CAS loop)
	for {
		old := m.recordTimeMax.Load()
		if ns <= old {
			break
		}
		if m.recordTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordFeed records a completed feed run.
func (m *Metrics) RecordFeed() {
	m.feedsTotal.Add(1)
}

// RecordPoolAcquire records a pool acquire operation.
func (m *Metrics) RecordPoolAcquire() {
	m.poolAcquires.Add(1)
}

// RecordPoolRelease records a pool release operation.
func (m *Metrics) RecordPoolRelease() {
	m.poolReleases.Add(1)
}

// RecordIssue records an issue based on severity.
func (m *Metrics) RecordIssue(severity IssueSeverity) {
	switch severity {
	case SeverityError, SeverityFatal:
		m.errorsTotal.Add(1)
	case SeverityWarning:
		m.warningsTotal.Add(1)
	case SeverityInformation:
		m.infosTotal.Add(1)
	}
}

// RecordRule records metrics for one rule module invocation.
func (m *Metrics) RecordRule(ruleName string, duration time.Duration, issuesFound int) {
	rm := m.getOrCreateRuleMetrics(ruleName)
	rm.invocations.Add(1)
	rm.totalTime.Add(uint64(duration.Nanoseconds()))
	rm.issuesFound.Add(uint64(issuesFound))
}

func (m *Metrics) getOrCreateRuleMetrics(name string) *ruleMetrics {
	if v, ok := m.ruleTiming.Load(name); ok {
		return v.(*ruleMetrics)
	}
	rm := &ruleMetrics{}
	actual, _ := m.ruleTiming.LoadOrStore(name, rm)
	return actual.(*ruleMetrics)
}

// --- Query Methods ---

// RecordsTotal returns the total number of records validated.
func (m *Metrics) RecordsTotal() uint64 {
	return m.recordsTotal.Load()
}

// RecordsValid returns the number of records without errors.
func (m *Metrics) RecordsValid() uint64 {
	return m.recordsValid.Load()
}

// ValidRate returns the fraction of valid records (0.0 to 1.0).
func (m *Metrics) ValidRate() float64 {
	total := m.recordsTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.recordsValid.Load()) / float64(total)
}

// FeedsTotal returns the number of feed runs recorded.
func (m *Metrics) FeedsTotal() uint64 {
	return m.feedsTotal.Load()
}

// AverageRecordTime returns the average per-record validation duration.
func (m *Metrics) AverageRecordTime() time.Duration {
	total := m.recordsTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.recordTimeTotal.Load() / total)
}

// MinRecordTime returns the minimum per-record validation duration.
func (m *Metrics) MinRecordTime() time.Duration {
	minVal := m.recordTimeMin.Load()
	if minVal == ^uint64(0) {
		return 0
	}
	return time.Duration(minVal)
}

// MaxRecordTime returns the maximum per-record validation duration.
func (m *Metrics) MaxRecordTime() time.Duration {
	return time.Duration(m.recordTimeMax.Load())
}

// PoolAcquires returns the total pool acquire operations.
func (m *Metrics) PoolAcquires() uint64 {
	return m.poolAcquires.Load()
}

// PoolReleases returns the total pool release operations.
func (m *Metrics) PoolReleases() uint64 {
	return m.poolReleases.Load()
}

// PoolLeaks returns potential pool leaks (acquires - releases).
func (m *Metrics) PoolLeaks() int64 {
	return int64(m.poolAcquires.Load()) - int64(m.poolReleases.Load())
}

// ErrorsTotal returns the total error issues found.
func (m *Metrics) ErrorsTotal() uint64 {
	return m.errorsTotal.Load()
}

// WarningsTotal returns the total warning issues found.
func (m *Metrics) WarningsTotal() uint64 {
	return m.warningsTotal.Load()
}

// InfosTotal returns the total informational issues found.
func (m *Metrics) InfosTotal() uint64 {
	return m.infosTotal.Load()
}

// RuleStats holds statistics for a single rule module.
type RuleStats struct {
	Name        string
	Invocations uint64
	TotalTime   time.Duration
	AvgTime     time.Duration
	IssuesFound uint64
}

// RuleStats returns statistics for a specific rule module.
func (m *Metrics) RuleStats(ruleName string) (RuleStats, bool) {
	v, ok := m.ruleTiming.Load(ruleName)
	if !ok {
		return RuleStats{}, false
	}
	rm := v.(*ruleMetrics)

	stats := RuleStats{
		Name:        ruleName,
		Invocations: rm.invocations.Load(),
		TotalTime:   time.Duration(rm.totalTime.Load()),
		IssuesFound: rm.issuesFound.Load(),
	}
	if stats.Invocations > 0 {
		stats.AvgTime = stats.TotalTime / time.Duration(stats.Invocations)
	}
	return stats, true
}

// AllRuleStats returns statistics for every rule module seen so far.
func (m *Metrics) AllRuleStats() []RuleStats {
	var all []RuleStats
	m.ruleTiming.Range(func(key, value any) bool {
		rm := value.(*ruleMetrics)
		stats := RuleStats{
			Name:        key.(string),
			Invocations: rm.invocations.Load(),
			TotalTime:   time.Duration(rm.totalTime.Load()),
			IssuesFound: rm.issuesFound.Load(),
		}
		if stats.Invocations > 0 {
			stats.AvgTime = stats.TotalTime / time.Duration(stats.Invocations)
		}
		all = append(all, stats)
		return true
	})
	return all
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.recordsTotal.Store(0)
	m.recordsValid.Store(0)
	m.recordTimeTotal.Store(0)
	m.recordTimeMin.Store(^uint64(0))
	m.recordTimeMax.Store(0)
	m.feedsTotal.Store(0)
	m.poolAcquires.Store(0)
	m.poolReleases.Store(0)
	m.errorsTotal.Store(0)
	m.warningsTotal.Store(0)
	m.infosTotal.Store(0)
	m.ruleTiming = sync.Map{}
}
