package models

// Role identifies who is acting on a request
type Role string

const (
	RolePublic      Role = "public"
	RoleCoordinator Role = "coordinator"
)

// AuthContext is the request-scoped authorization claim passed into every
// use case call. It replaces any process-wide "admin session" state.
type AuthContext struct {
	Role            Role   `json:"role"`
	CoordinatorName string `json:"coordinator_name,omitempty"`
	SessionID       string `json:"session_id,omitempty"`
}

// IsCoordinator reports whether the caller holds the privileged coordinator capability
func (a AuthContext) IsCoordinator() bool {
	return a.Role == RoleCoordinator
}

// PublicAuth returns the claim used for unauthenticated callers
func PublicAuth() AuthContext {
	return AuthContext{Role: RolePublic}
}

// CoordinatorSessionRequest exchanges the admin PIN for a coordinator session
type CoordinatorSessionRequest struct {
	PIN             string `json:"pin"`
	CoordinatorName string `json:"coordinator_name"`
}

// CoordinatorSessionResponse carries the signed coordinator token
type CoordinatorSessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
