package discord

import "sync"

type participantToken struct {
	participantID string
	name          string
	editToken     string
}

// tokenStore remembers the participant a Discord user registered per event,
// for the lifetime of the process.
type tokenStore struct {
	mu     sync.Mutex
	byUser map[string]participantToken
}

func newTokenStore() *tokenStore {
	return &tokenStore{byUser: make(map[string]participantToken)}
}

func tokenKey(eventID, userID string) string { return eventID + "|" + userID }

func (s *tokenStore) get(eventID, userID, name string) (participantToken, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tok, ok := s.byUser[tokenKey(eventID, userID)]
	if !ok || tok.name != name {
		return participantToken{}, false
	}
	return tok, true
}

func (s *tokenStore) put(eventID, userID string, tok participantToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[tokenKey(eventID, userID)] = tok
}
