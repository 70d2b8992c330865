package domain

// Session is the identity of the signed-in user kept on the device.
type Session struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

func (s Session) IsZero() bool {
	return s.UserID == ""
}
