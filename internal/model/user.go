package model

// User is an admin identity. Rows are created by the bootstrap and never
// mutated afterwards; PasswordHash is a bcrypt hash, never a raw password.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"size:80;uniqueIndex:idx_user_username;not null"`
	PasswordHash string `gorm:"size:120;not null"`
}

func (User) TableName() string { return "users" }
