package domain

type User struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

// Session identifies the user a call is made on behalf of.
type Session struct {
	UserID string
	Email  string
	Name   string
}

func (s Session) IsZero() bool {
	return s.UserID == ""
}
