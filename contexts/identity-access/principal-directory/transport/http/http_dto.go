package httptransport

type RegisterPrincipalRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role,omitempty"`
	Tier     string `json:"tier,omitempty"`
}

type ChangeTierRequest struct {
	Tier string `json:"tier"`
}

type PrincipalDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	UserType  string `json:"user_type"`
	Tier      string `json:"subscription_tier"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
