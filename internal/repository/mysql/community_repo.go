package mysql

import (
	"time"

	"Nova_Community/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunityRepository struct {
	DB *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	if db == nil {
		db = DB
	}
	return &CommunityRepository{DB: db}
}

// Create 单事务完成：社区 + 创建者的管理员成员 + outbox 事件。
// 任何一步失败整体回滚，保证每个社区恰好有一条 owner 的管理员成员记录。
// adminRoleID 为空时在事务内按名补建管理员角色。
func (r *CommunityRepository) Create(c *model.Community, adminRoleID string) (*model.Member, error) {
	var member *model.Member
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}

		if adminRoleID == "" {
			adminRole, err := findOrCreateTx(tx, model.RoleCommunityAdmin)
			if err != nil {
				return err
			}
			adminRoleID = adminRole.ID
		}

		member = &model.Member{
			ID:          uuid.NewString(),
			CommunityID: c.ID,
			UserID:      c.OwnerID,
			RoleID:      adminRoleID,
			CreatedAt:   time.Now(),
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		return insertOutboxTx(tx, "community_created", c.ID, c.OwnerID)
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

func (r *CommunityRepository) FindByID(id string) (*model.Community, error) {
	var community model.Community
	err := r.DB.Where("id = ?", id).First(&community).Error
	return &community, err
}

func (r *CommunityRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Community{}).Count(&count).Error
	return count, err
}

func (r *CommunityRepository) List(offset, limit int) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Order("created_at").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

func (r *CommunityRepository) CountByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Community{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *CommunityRepository) ListByOwner(ownerID string, offset, limit int) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Where("owner_id = ?", ownerID).
		Order("created_at").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

// ListJoinedBy 按成员表解析用户加入的社区
func (r *CommunityRepository) ListJoinedBy(userID string, offset, limit int) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Model(&model.Community{}).
		Joins("JOIN members ON members.community_id = communities.id").
		Where("members.user_id = ?", userID).
		Order("members.created_at").Offset(offset).Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *CommunityRepository) CountJoinedBy(userID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Member{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
