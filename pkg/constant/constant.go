package constant

const (
	// Collections.
	UserCollection    = "users"
	SessionCollection = "sessions"

	// Token lifetimes, in minutes.
	DefaultVerificationExpiryMin = 10
	DefaultAccessTokenExpiryMin  = 14400 // 10 days
	DefaultRefreshTokenExpiryMin = 43200 // 30 days
)
