package userModel

type (
	LoginRequest struct {
		Name  string `json:"name"`
		Email string `json:"email" binding:"required"`
	}
)
