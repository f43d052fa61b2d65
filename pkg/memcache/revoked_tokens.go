package mem

import "time"

// RevokedTokenStore remembers logged-out token ids until the tokens would have
// expired anyway.
type RevokedTokenStore interface {
	Revoke(tokenID string, until time.Time)
	IsRevoked(tokenID string) bool
}

type RevokedTokens struct {
	ids *ttlMap[struct{}]
}

func NewRevokedTokens() *RevokedTokens {
	return NewRevokedTokensWithClock(time.Now)
}

func NewRevokedTokensWithClock(now func() time.Time) *RevokedTokens {
	return &RevokedTokens{ids: newTTLMap[struct{}](now)}
}

func (r *RevokedTokens) Revoke(tokenID string, until time.Time) {
	r.ids.set(tokenID, struct{}{}, until)
}

func (r *RevokedTokens) IsRevoked(tokenID string) bool {
	_, ok := r.ids.peek(tokenID)
	return ok
}

func (r *RevokedTokens) Prune() int {
	return r.ids.prune()
}
