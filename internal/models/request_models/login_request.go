package request_models

type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// SignUpRequest fields are declared in the order their rules are reported.
type SignUpRequest struct {
	FamilyName      string `json:"family_name" binding:"required"`
	GivenName       string `json:"given_name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"eqfield=Password"`
	AcceptTerms     bool   `json:"accept_terms" binding:"required"`
}
