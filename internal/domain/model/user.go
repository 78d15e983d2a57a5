package model

// 用戶角色，完成註冊(completeSignUp)時才會賦值，之後不可由用戶修改
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
)

type User struct {
	BaseModel
	UserID         string   `gorm:"primaryKey;type:uuid"`
	UserName       string   `gorm:"not null;type:varchar(50)"`
	UserEmail      string   `gorm:"unique;not null;type:varchar(100)"`
	PasswordHash   string   `gorm:"not null;type:varchar(100)"`
	Role           UserRole `gorm:"type:varchar(20)"`
	UserPhone      string   `gorm:"type:varchar(50)"`
	UserAddress    string   `gorm:"type:varchar(255)"`
	SignupComplete bool     `gorm:"not null;default:false"`
	Orders         []Order  `gorm:"foreignKey:UserID"`
}
