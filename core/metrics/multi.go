package metrics

// MultiSink fans out events to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPlanResult forwards the record to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordPlanResult(res PlanResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordPlanResult(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordOverflow forwards overflow events to sinks that support them.
func (m *MultiSink) RecordOverflow(ev OverflowEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(OverflowRecorder); ok {
			if err := rec.RecordOverflow(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordConflict forwards conflict events to sinks that support them.
func (m *MultiSink) RecordConflict(ev ConflictEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(ConflictRecorder); ok {
			if err := rec.RecordConflict(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordUtilization forwards utilization snapshots to sinks that support them.
func (m *MultiSink) RecordUtilization(ev UtilizationEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(UtilizationRecorder); ok {
			if err := rec.RecordUtilization(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
