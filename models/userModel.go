package models

type User struct {
	Model
	Username    string `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Email       string `json:"email" gorm:"size:254"`
	Password    string `json:"-" gorm:"not null"`
	FirstName   string `json:"first_name" gorm:"size:150"`
	LastName    string `json:"last_name" gorm:"size:150"`
	IsActive    bool   `json:"is_active" gorm:"not null"`
	IsStaff     bool   `json:"is_staff" gorm:"not null;default:false"`
	IsSuperuser bool   `json:"is_superuser" gorm:"not null;default:false"`
}

type RegisterData struct {
	Username  string `json:"username" binding:"required,max=150"`
	Password  string `json:"password" binding:"required,min=8"`
	Email     string `json:"email" binding:"omitempty,email"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
}

type LoginData struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshData struct {
	Refresh string `json:"refresh" binding:"required"`
}
