package domain

import "time"

// RemixSeed pre-fills the generator from an existing item. It is consumed
// exactly once: reading it clears it so it does not reapply.
type RemixSeed struct {
	Prompt      string
	SourceImage string
}

// Session is the server-side state for one logged-in client: the identity
// plus the bits of per-client UI state that outlive a single request.
// Sessions live in memory only and vanish on restart.
type Session struct {
	Token      string
	UserID     string
	OpenItemID string     // item currently open in the detail view, "" if none
	Remix      *RemixSeed // pending remix seed, nil if none
	APIKey     string     // personal key for high-resolution models, "" if unset
	CreatedAt  time.Time
}
