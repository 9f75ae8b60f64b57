package model

import "time"

type Community struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:64;not null"`
	Slug      string `gorm:"size:64;not null;index"`
	OwnerID   string `gorm:"size:36;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Member struct {
	ID          string `gorm:"primaryKey;size:36"`
	CommunityID string `gorm:"size:36;not null;index;uniqueIndex:uk_community_user"`
	UserID      string `gorm:"size:36;not null;index;uniqueIndex:uk_community_user"`
	RoleID      string `gorm:"size:36;not null"`
	CreatedAt   time.Time
}
