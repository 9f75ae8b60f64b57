package mysql

import (
	"context"
	"encoding/json"
	"time"

	"Nova_Community/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) *OutboxRepository {
	if db == nil {
		db = DB
	}
	return &OutboxRepository{DB: db}
}

// insertOutboxTx 在业务事务内落一条成员事件
func insertOutboxTx(tx *gorm.DB, eventType, communityID, userID string) error {
	payload, err := json.Marshal(map[string]any{
		"event":     eventType,
		"community": communityID,
		"user":      userID,
		"at":        time.Now().Unix(),
	})
	if err != nil {
		return err
	}
	return tx.Create(&model.MembershipOutbox{
		EventType:   eventType,
		CommunityID: communityID,
		UserID:      userID,
		Payload:     string(payload),
		Status:      0,
	}).Error
}

// ListPending 按批量大小取待投递事件
func (r *OutboxRepository) ListPending(ctx context.Context, batch int) ([]model.MembershipOutbox, error) {
	var rows []model.MembershipOutbox
	err := r.DB.WithContext(ctx).
		Where("status = ?", 0).
		Order("id").Limit(batch).
		Find(&rows).Error
	return rows, err
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.MembershipOutbox{}).
		Where("id = ?", id).
		Update("status", 1).Error
}

func (r *OutboxRepository) MarkRetry(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.MembershipOutbox{}).
		Where("id = ?", id).
		Updates(map[string]any{"retry": gorm.Expr("retry + 1")}).Error
}
