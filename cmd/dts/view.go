package main

// viewStyle shows the full record for one style.
func (s *session) viewStyle() {
	match, ok := s.pickStyle("view")
	if !ok {
		return
	}
	s.printStyleDetail(match.Index, match.Style)
}
