package mysql

import (
	"Nova_Community/internal/model"

	"gorm.io/gorm"
)

type MemberRepository struct {
	DB *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	if db == nil {
		db = DB
	}
	return &MemberRepository{DB: db}
}

// Create 写成员记录，outbox 事件同事务
func (r *MemberRepository) Create(member *model.Member) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		return insertOutboxTx(tx, "member_added", member.CommunityID, member.UserID)
	})
}

// Delete 删除成员记录，outbox 事件同事务
func (r *MemberRepository) Delete(member *model.Member) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", member.ID).Delete(&model.Member{}).Error; err != nil {
			return err
		}
		return insertOutboxTx(tx, "member_removed", member.CommunityID, member.UserID)
	})
}

func (r *MemberRepository) FindByID(id string) (*model.Member, error) {
	var member model.Member
	err := r.DB.Where("id = ?", id).First(&member).Error
	return &member, err
}

// Exists 社区内是否已有该用户的成员记录
func (r *MemberRepository) Exists(communityID, userID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Member{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *MemberRepository) CountByCommunity(communityID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Member{}).Where("community_id = ?", communityID).Count(&count).Error
	return count, err
}

func (r *MemberRepository) ListByCommunity(communityID string, offset, limit int) ([]model.Member, error) {
	var list []model.Member
	err := r.DB.Where("community_id = ?", communityID).
		Order("created_at").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}
