package model

import "encoding/json"

// Session is a locally persisted copy of the backend-issued session payload.
// The payload format belongs to the backend auth subsystem; it is stored and
// returned verbatim.
type Session struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Payload   json.RawMessage `json:"payload"`
	Ctime     int64           `json:"ctime"`
	ExpiresAt int64           `json:"expires_at"`
}
