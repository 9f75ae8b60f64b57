package service

import (
	"errors"
	"time"

	"Nova_Community/internal/model"
	"Nova_Community/internal/pkg"
	"Nova_Community/internal/repository/mysql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberService struct {
	repo          *mysql.MemberRepository
	communityRepo *mysql.CommunityRepository
	userRepo      *mysql.UserRepository
	roleRepo      *mysql.RoleRepository
}

func NewMemberService(db *gorm.DB) *MemberService {
	return &MemberService{
		repo:          mysql.NewMemberRepository(db),
		communityRepo: mysql.NewCommunityRepository(db),
		userRepo:      mysql.NewUserRepository(db),
		roleRepo:      mysql.NewRoleRepository(db),
	}
}

// AddMember 加成员。只有目标社区的 owner 可以操作，
// 同一社区同一用户只能有一条成员记录。
func (s *MemberService) AddMember(requesterID, communityID, userID, roleID string) (*model.Member, error) {
	if communityID == "" || userID == "" || roleID == "" {
		return nil, pkg.InvalidInput("community, user, role", "community, user, and role must not be null.")
	}

	community, err := s.communityRepo.FindByID(communityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.ResourceNotFound("community", "Community not found.")
		}
		return nil, err
	}

	// 授权必须限定到目标社区，而不是"拥有某个社区"
	if community.OwnerID != requesterID {
		return nil, pkg.NotAllowed()
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.ResourceNotFound("user", "User not found.")
		}
		return nil, err
	}

	if _, err := s.roleRepo.FindByID(roleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.ResourceNotFound("role", "Role not found.")
		}
		return nil, err
	}

	exists, err := s.repo.Exists(communityID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, pkg.ResourceExists("", "User is already added in the community.")
	}

	member := &model.Member{
		ID:          uuid.NewString(),
		CommunityID: communityID,
		UserID:      userID,
		RoleID:      roleID,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(member); err != nil {
		return nil, err
	}
	return member, nil
}

// RemoveMember 移除成员。要求请求者是该成员所在社区的 owner。
// 重复删除同一 id 会报 RESOURCE_NOT_FOUND，不是静默成功。
func (s *MemberService) RemoveMember(requesterID, memberID string) error {
	member, err := s.repo.FindByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ResourceNotFound("member", "Member not found.")
		}
		return err
	}

	community, err := s.communityRepo.FindByID(member.CommunityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ResourceNotFound("community", "Community not found.")
		}
		return err
	}

	if community.OwnerID != requesterID {
		return pkg.NotAllowed()
	}

	return s.repo.Delete(member)
}
