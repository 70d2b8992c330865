package remote

import "time"

type SignupRequest struct {
	Email     string
	Password  string
	Name      string
	Introduce string
	Languages []string
	Careers   []string
	Categorys []string
}

// SignupResponse is the created profile: the request fields without the
// password, plus the account ID.
type SignupResponse struct {
	ID        string
	Email     string
	Name      string
	Introduce string
	Languages []string
	Careers   []string
	Categorys []string
}

type EmailLoginData struct {
	Email    string
	Password string
}

// ChatResponseDTO is a stored chat message before it is mapped to an entity.
type ChatResponseDTO struct {
	ID         string
	ChatRoomID string
	UserID     string
	Message    string
	Date       time.Time
}

type ChatRoomResponseDTO struct {
	ID        string
	StudyID   string
	UserIDs   []string
	CreatedAt time.Time
}

// UserResponseDTO mirrors the fields of a User profile document.
type UserResponseDTO struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	Name            string   `json:"name"`
	Introduce       string   `json:"introduce"`
	ProfileImageURL string   `json:"profileImageURLString"`
	Languages       []string `json:"languages"`
	Careers         []string `json:"careers"`
	Categorys       []string `json:"categorys"`
}
