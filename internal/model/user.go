package model

import "time"

type User struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:64;not null"`
	Email     string `gorm:"uniqueIndex;size:64;not null"`
	Password  string `gorm:"size:255;not null"` // bcrypt hash
	CreatedAt time.Time
}

// UserSummary 列表展开时用的简要信息
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name}
}
