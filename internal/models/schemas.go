package models

// SignupRequest is the payload accepted by the signup endpoint.
// PermissionLevel is optional and defaults to ordinary.
type SignupRequest struct {
	Username        string `json:"username" binding:"required,min=3"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	PermissionLevel int    `json:"permission_level" binding:"omitempty,oneof=1 2"`
}

// LoginForm is the form-encoded credential pair presented at login.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenPair is the login response: a short-lived access token and a
// longer-lived refresh token. They are signed for distinct purposes and
// are not interchangeable.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CreatePizzaRequest is the payload for creating a catalog pizza. A nil
// IsActive means the pizza starts active.
type CreatePizzaRequest struct {
	Name     string `json:"name" binding:"required"`
	Price    int64  `json:"price" binding:"required,gt=0"`
	IsActive *bool  `json:"is_active"`
}

// UpdatePizzaRequest carries the partial update for a pizza. A nil field
// leaves the column unchanged; present values replace it. Fields cannot
// be cleared: JSON null and an absent key both read as nil here.
type UpdatePizzaRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Price    *int64  `json:"price" binding:"omitempty,gt=0"`
	IsActive *bool   `json:"is_active"`
}

// CreateIngredientRequest is the payload for creating an ingredient.
type CreateIngredientRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// UpdateIngredientRequest carries the partial update for an ingredient,
// with the same nil-means-unchanged convention as pizzas.
type UpdateIngredientRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Category *string `json:"category" binding:"omitempty,min=1"`
}
