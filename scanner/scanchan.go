package scanner

// ScanChan runs Scan in a background goroutine and streams hits over the
// returned channel, for callers who'd rather `for m := range ...` than pass
// a callback. The channel is unbuffered and closed when the scan finishes;
// any error from Scan is delivered on the second returned channel exactly
// once, after the hit channel is closed.
//
// Cancellation: closing done stops the scan after its current hit (Scan's
// yield returns false), the same early-exit path a callback caller gets by
// returning false itself.
func (s *Scanner) ScanChan(start, maxlen uint64, done <-chan struct{}) (<-chan Match, <-chan error) {
	matches := make(chan Match)
	errs := make(chan error, 1)

	go func() {
		err := s.Scan(start, maxlen, func(m Match) bool {
			select {
			case matches <- m:
				return true
			case <-done:
				return false
			}
		})
		close(matches)
		errs <- err
		close(errs)
	}()

	return matches, errs
}
