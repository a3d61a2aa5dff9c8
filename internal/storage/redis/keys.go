package redis

// key applies the configured prefix
func (s *Storage) key(k string) string {
	if s.cfg.KeyPrefix == "" {
		return k
	}
	return s.cfg.KeyPrefix + ":" + k
}
