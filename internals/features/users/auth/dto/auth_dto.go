package dto

type RegisterRequest struct {
	Username     string         `json:"username" validate:"required,max=50"`
	Age          int            `json:"age" validate:"required,min=1,max=120"`
	AvatarConfig map[string]any `json:"avatar_config"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
}
