package service

import (
	"time"

	"Nova_Community/internal/model"
	"Nova_Community/internal/pkg"
	"Nova_Community/internal/repository/mysql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoleService struct {
	repo *mysql.RoleRepository
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{repo: mysql.NewRoleRepository(db)}
}

// CreateRole 名字限定固定集合，重复建会被拒绝
func (s *RoleService) CreateRole(name string) (*model.Role, error) {
	if len(name) < 2 {
		return nil, pkg.InvalidInput("name", "Name should be at least 2 characters.")
	}
	if !model.AllowedRoleName(name) {
		return nil, pkg.InvalidInput("name", "Invalid role name.")
	}

	exists, err := s.repo.ExistsByName(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pkg.ResourceExists("name", "Role with this name already exists.")
	}

	now := time.Now()
	role := &model.Role{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(role); err != nil {
		return nil, err
	}
	return role, nil
}

// ListRoles 分页列出角色目录
func (s *RoleService) ListRoles(page, perPage int) ([]model.Role, pkg.PageMeta, error) {
	page, perPage = normalizePage(page, perPage)

	total, err := s.repo.Count()
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	list, err := s.repo.List((page-1)*perPage, perPage)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	return list, pkg.NewPageMeta(total, page, perPage), nil
}

// normalizePage 页码 1 起，页大小默认 10，上限 50
func normalizePage(page, perPage int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 || perPage > 50 {
		perPage = 10
	}
	return page, perPage
}
