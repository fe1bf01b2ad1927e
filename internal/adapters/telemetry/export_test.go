package telemetry

// Batcher exports the span's internal batcher for testing purposes.
func (s *OTelSpan) Batcher() *BatchProcessor {
	return s.batcher
}
