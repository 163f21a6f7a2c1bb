package reencode

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total            int
	Reencoded        int
	NotFound         int
	Failed           int
	BackupsReused    int
	TotalInputBytes  int64
	TotalOutputBytes int64
}

// Add folds one per-file result into the totals.
func (s *RunStats) Add(res Result) {
	s.Total++
	if res.BackupExisted {
		s.BackupsReused++
	}
	switch res.Outcome {
	case Reencoded:
		s.Reencoded++
		s.TotalInputBytes += res.InputBytes
		s.TotalOutputBytes += res.OutputBytes
	case NotFound:
		s.NotFound++
	default:
		s.Failed++
	}
}

// SpaceSaved returns the aggregate byte difference between inputs and outputs
// of re-encoded files. Positive means outputs are smaller; negative means they grew.
func (s *RunStats) SpaceSaved() int64 {
	return s.TotalInputBytes - s.TotalOutputBytes
}
