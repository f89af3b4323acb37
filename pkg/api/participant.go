package api

// Participant is a consorcio member.
type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Unit      string `json:"unit,omitempty"`
	Active    bool   `json:"active"`
	CreatedAt int64  `json:"created_at"`
}

type CreateParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Unit  string `json:"unit,omitempty"`
	// Active defaults to true when omitted.
	Active *bool `json:"active,omitempty"`
}

type CreateParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type GetParticipantRequest struct {
	ParticipantID string `json:"participant_id"`
}

type GetParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type ListParticipantsRequest struct{}

type ListParticipantsResponse struct {
	Participants []*Participant `json:"participants"`
}

type UpdateParticipantRequest struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Unit          string `json:"unit,omitempty"`
	Active        bool   `json:"active"`
}

type UpdateParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type DeleteParticipantRequest struct {
	ParticipantID string `json:"participant_id"`
}

type DeleteParticipantResponse struct{}
