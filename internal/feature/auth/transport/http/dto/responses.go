package dto

// UserResp is the public view of a user. The password hash is never echoed.
type UserResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthResp is the success response for the register and login endpoints.
type AuthResp struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserResp `json:"user"`
}

// MessageResp carries a bare status message.
type MessageResp struct {
	Message string `json:"message"`
}
