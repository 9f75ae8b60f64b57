package model

import "time"

const (
	RoleCommunityAdmin  = "Community Admin"
	RoleCommunityMember = "Community Member"
)

// Role 角色目录，名字限定为固定集合
type Role struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"uniqueIndex;size:64;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoleSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r *Role) Summary() RoleSummary {
	return RoleSummary{ID: r.ID, Name: r.Name}
}

// AllowedRoleName 校验是否属于固定集合
func AllowedRoleName(name string) bool {
	return name == RoleCommunityAdmin || name == RoleCommunityMember
}
