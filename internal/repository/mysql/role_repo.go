package mysql

import (
	"errors"
	"time"

	"Nova_Community/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleRepository struct {
	DB *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	if db == nil {
		db = DB
	}
	return &RoleRepository{DB: db}
}

func (r *RoleRepository) Create(role *model.Role) error {
	return r.DB.Create(role).Error
}

func (r *RoleRepository) FindByID(id string) (*model.Role, error) {
	var role model.Role
	err := r.DB.Where("id = ?", id).First(&role).Error
	return &role, err
}

func (r *RoleRepository) FindByName(name string) (*model.Role, error) {
	var role model.Role
	err := r.DB.Where("name = ?", name).First(&role).Error
	return &role, err
}

func (r *RoleRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Role{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *RoleRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Role{}).Count(&count).Error
	return count, err
}

func (r *RoleRepository) List(offset, limit int) ([]model.Role, error) {
	var list []model.Role
	err := r.DB.Order("created_at").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

// FindSummaries 批量取 {id,name}，成员列表展开 role 用
func (r *RoleRepository) FindSummaries(ids []string) (map[string]model.RoleSummary, error) {
	out := make(map[string]model.RoleSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var roles []model.Role
	if err := r.DB.Select("id", "name").Where("id IN ?", ids).Find(&roles).Error; err != nil {
		return nil, err
	}
	for i := range roles {
		out[roles[i].ID] = roles[i].Summary()
	}
	return out, nil
}

// findOrCreateTx 在事务内按名取角色，没有则建一条。
// 社区创建依赖管理员角色存在，目录为空时在这里补齐。
func findOrCreateTx(tx *gorm.DB, name string) (*model.Role, error) {
	var role model.Role
	err := tx.Where("name = ?", name).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	now := time.Now()
	role = model.Role{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
