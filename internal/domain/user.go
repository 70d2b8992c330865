package domain

// User is a profile snapshot of a study member. The backend document is the
// source of truth; the client never mutates it in place.
type User struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	Name            string   `json:"name"`
	Introduce       string   `json:"introduce"`
	ProfileImageURL string   `json:"profileImageURLString"`
	Languages       []string `json:"languages"`
	Careers         []string `json:"careers"`
	Categorys       []string `json:"categorys"`
}

type UserCtxKey struct{}
