package request_models

type UpdateProfileRequest struct {
	FamilyName string `json:"family_name" binding:"required"`
	GivenName  string `json:"given_name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}
