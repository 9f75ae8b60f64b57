package model

import "time"

// MembershipOutbox 成员事件监控表，社区创建/加人/移除都会落一条，
// 与业务写入同事务，由 relayer 异步投递
type MembershipOutbox struct {
	ID          uint64 `gorm:"primaryKey"`
	EventType   string `gorm:"size:24;not null"` // community_created / member_added / member_removed
	CommunityID string `gorm:"size:36;not null"`
	UserID      string `gorm:"size:36;not null"`
	Payload     string `gorm:"type:json;not null"`
	Status      int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry       int    `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (MembershipOutbox) TableName() string { return "membership_outbox" }
