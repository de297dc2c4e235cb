package main

// reloadStyles re-reads the styles file, discarding unsaved in-memory state.
func (s *session) reloadStyles() {
	err := s.db.Reload()
	s.reportLoad(err)
}
