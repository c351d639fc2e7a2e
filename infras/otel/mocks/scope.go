package mocks

type scope struct {
	parent *Otel
}

func (s *scope) End() {}

func (s *scope) AddEvent(_ string) {}

func (s *scope) SetAttribute(_ string, _ any) {}

func (s *scope) SetAttributes(_ map[string]any) {}

func (s *scope) TraceError(err error) {
	s.parent.record(err)
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.parent.record(err)
	}
}
