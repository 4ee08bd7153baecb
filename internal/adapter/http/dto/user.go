package dto

// UserItem never carries pass; the struct simply has no field for it.
type UserItem struct {
	ID        string `json:"_id"`
	CC        string `json:"cc"`
	Name      string `json:"name"`
	Tel       string `json:"tel"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// LoginUserItem is the login payload shape: public fields only, no
// creation timestamp.
type LoginUserItem struct {
	ID    string `json:"_id"`
	CC    string `json:"cc"`
	Name  string `json:"name"`
	Tel   string `json:"tel"`
	Email string `json:"email"`
}

type LoginData struct {
	User LoginUserItem `json:"user"`
}

type RegisterUserRequest struct {
	CC    string `json:"cc" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Tel   string `json:"tel"`
	Email string `json:"email"`
	Pass  string `json:"pass" binding:"required"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Pass  string `json:"pass" binding:"required"`
}
