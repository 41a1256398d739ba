package ports

// Claims is the identity payload embedded in a session token.
type Claims struct {
	UserID int64
	Email  string
	Role   string
}

// TokenService issues and verifies self-contained session tokens. Tokens are
// valid for a fixed lifetime set at issuance; there is no server-side
// revocation, expiry is the only invalidation mechanism.
type TokenService interface {
	Issue(userID int64, email, role string) (string, error)
	Verify(token string) (*Claims, error)
}
