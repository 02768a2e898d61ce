package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account holds login credentials. Display and contact details live in Profile.
type Account struct {
	BaseModel
	Phone        string `gorm:"uniqueIndex;size:10;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"size:16;not null;default:user"`
	IsActive     bool   `gorm:"not null;default:true"`
}
