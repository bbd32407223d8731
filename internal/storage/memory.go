package storage

// MemoryStore holds state in a plain map. It backs tests and throwaway
// sessions that should not touch the filesystem.
type MemoryStore struct {
	state map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: map[string]string{}}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	value, ok := s.state[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.state[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	delete(s.state, key)
	return nil
}
