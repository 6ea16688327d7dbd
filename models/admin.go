package models

type Admin struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	LastLogin string `json:"lastLogin,omitempty"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLoginResult is the upstream login payload: the bearer token used
// for every subsequent backend call plus the admin profile blob.
type AdminLoginResult struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

type AdminVerifyResult struct {
	Valid bool  `json:"valid"`
	Admin Admin `json:"admin"`
}
