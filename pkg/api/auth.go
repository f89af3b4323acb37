package api

// User is a login linked to a participant.
type User struct {
	ID            string `json:"id"`
	ParticipantID string `json:"participant_id"`
	Email         string `json:"email"`
	CreatedAt     int64  `json:"created_at"`
}

// RegisterRequest creates a login. When ParticipantID is empty the
// participant with the same email is used.
type RegisterRequest struct {
	ParticipantID string `json:"participant_id,omitempty"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User        *User        `json:"user"`
	Participant *Participant `json:"participant"`
}
