package service

import (
	"errors"
	"time"

	"Nova_Community/internal/model"
	"Nova_Community/internal/pkg"
	"Nova_Community/internal/repository/mysql"
	"Nova_Community/internal/repository/redis"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommunityService struct {
	repo       *mysql.CommunityRepository
	memberRepo *mysql.MemberRepository
	userRepo   *mysql.UserRepository
	roleRepo   *mysql.RoleRepository
	roleCache  *redis.RoleCache
}

func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{
		repo:       mysql.NewCommunityRepository(db),
		memberRepo: mysql.NewMemberRepository(db),
		userRepo:   mysql.NewUserRepository(db),
		roleRepo:   mysql.NewRoleRepository(db),
		roleCache:  &redis.RoleCache{},
	}
}

// CommunityView 列表行，owner 展开成 {id,name}
type CommunityView struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Slug      string            `json:"slug"`
	Owner     model.UserSummary `json:"owner"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// MemberView 社区成员行，user/role 展开成简要信息
type MemberView struct {
	ID        string            `json:"id"`
	Community string            `json:"community"`
	User      model.UserSummary `json:"user"`
	Role      model.RoleSummary `json:"role"`
	CreatedAt time.Time         `json:"created_at"`
}

// CreateCommunity 创建社区，创建者成为 owner 并在同一事务里拿到管理员成员记录
func (s *CommunityService) CreateCommunity(ownerID, name string) (*model.Community, error) {
	if len(name) < 2 {
		return nil, pkg.InvalidInput("name", "Name should be at least 2 characters.")
	}

	// 防御性检查：中间件保证了登录态，但 owner 必须真实存在
	if _, err := s.userRepo.FindByID(ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotSignedIn()
		}
		return nil, err
	}

	adminRoleID := s.adminRoleID()

	now := time.Now()
	community := &model.Community{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      pkg.Slugify(name),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	member, err := s.repo.Create(community, adminRoleID)
	if err != nil {
		return nil, err
	}

	if adminRoleID == "" && member != nil {
		_ = s.roleCache.SetRoleID(model.RoleCommunityAdmin, member.RoleID)
	}
	return community, nil
}

// adminRoleID 取管理员角色 id：先问缓存，再查目录并回填。
// 都拿不到则返回空串，由仓储在事务内补建。
func (s *CommunityService) adminRoleID() string {
	if id, err := s.roleCache.GetRoleID(model.RoleCommunityAdmin); err == nil {
		return id
	}
	role, err := s.roleRepo.FindByName(model.RoleCommunityAdmin)
	if err != nil {
		return ""
	}
	_ = s.roleCache.SetRoleID(role.Name, role.ID)
	return role.ID
}

// ListCommunities 全量分页，owner 展开
func (s *CommunityService) ListCommunities(page, perPage int) ([]CommunityView, pkg.PageMeta, error) {
	page, perPage = normalizePage(page, perPage)

	total, err := s.repo.Count()
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	list, err := s.repo.List((page-1)*perPage, perPage)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	views, err := s.expandOwners(list)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	return views, pkg.NewPageMeta(total, page, perPage), nil
}

// ListMembers 社区成员分页，user/role 展开
func (s *CommunityService) ListMembers(communityID string, page, perPage int) ([]MemberView, pkg.PageMeta, error) {
	page, perPage = normalizePage(page, perPage)

	total, err := s.memberRepo.CountByCommunity(communityID)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	members, err := s.memberRepo.ListByCommunity(communityID, (page-1)*perPage, perPage)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}

	userIDs := make([]string, 0, len(members))
	roleIDs := make([]string, 0, len(members))
	for i := range members {
		userIDs = append(userIDs, members[i].UserID)
		roleIDs = append(roleIDs, members[i].RoleID)
	}
	users, err := s.userRepo.FindSummaries(userIDs)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	roles, err := s.roleRepo.FindSummaries(roleIDs)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}

	views := make([]MemberView, 0, len(members))
	for i := range members {
		m := &members[i]
		views = append(views, MemberView{
			ID:        m.ID,
			Community: m.CommunityID,
			User:      users[m.UserID],
			Role:      roles[m.RoleID],
			CreatedAt: m.CreatedAt,
		})
	}
	return views, pkg.NewPageMeta(total, page, perPage), nil
}

// ListOwned 当前用户拥有的社区
func (s *CommunityService) ListOwned(userID string, page, perPage int) ([]CommunityView, pkg.PageMeta, error) {
	page, perPage = normalizePage(page, perPage)

	total, err := s.repo.CountByOwner(userID)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	list, err := s.repo.ListByOwner(userID, (page-1)*perPage, perPage)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	views, err := s.expandOwners(list)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	return views, pkg.NewPageMeta(total, page, perPage), nil
}

// ListJoined 当前用户加入的社区，按成员表解析
func (s *CommunityService) ListJoined(userID string, page, perPage int) ([]CommunityView, pkg.PageMeta, error) {
	page, perPage = normalizePage(page, perPage)

	total, err := s.repo.CountJoinedBy(userID)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	list, err := s.repo.ListJoinedBy(userID, (page-1)*perPage, perPage)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	views, err := s.expandOwners(list)
	if err != nil {
		return nil, pkg.PageMeta{}, err
	}
	return views, pkg.NewPageMeta(total, page, perPage), nil
}

func (s *CommunityService) expandOwners(list []model.Community) ([]CommunityView, error) {
	ownerIDs := make([]string, 0, len(list))
	for i := range list {
		ownerIDs = append(ownerIDs, list[i].OwnerID)
	}
	owners, err := s.userRepo.FindSummaries(ownerIDs)
	if err != nil {
		return nil, err
	}

	views := make([]CommunityView, 0, len(list))
	for i := range list {
		c := &list[i]
		views = append(views, CommunityView{
			ID:        c.ID,
			Name:      c.Name,
			Slug:      c.Slug,
			Owner:     owners[c.OwnerID],
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return views, nil
}
