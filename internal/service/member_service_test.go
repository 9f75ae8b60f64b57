package service

import (
	"testing"

	"Nova_Community/internal/model"
	"Nova_Community/internal/pkg"

	"github.com/stretchr/testify/require"
)

type memberFixture struct {
	svc       *MemberService
	alice     *model.User // owner
	bob       *model.User
	carol     *model.User
	community *model.Community
	role      *model.Role // Community Member
}

func setupMemberFixture(t *testing.T) (*memberFixture, func() int64) {
	t.Helper()
	initTestJWT(t)
	db := newTestDB(t)

	f := &memberFixture{
		svc:   NewMemberService(db),
		alice: signupUser(t, db, "Alice", "alice@example.com"),
		bob:   signupUser(t, db, "Bob", "bob@example.com"),
		carol: signupUser(t, db, "Carol", "carol@example.com"),
	}

	community, err := NewCommunityService(db).CreateCommunity(f.alice.ID, "Team Rocket")
	require.NoError(t, err)
	f.community = community

	role, err := NewRoleService(db).CreateRole(model.RoleCommunityMember)
	require.NoError(t, err)
	f.role = role

	memberCount := func() int64 {
		var count int64
		require.NoError(t, db.Model(&model.Member{}).Count(&count).Error)
		return count
	}
	return f, memberCount
}

func TestAddMember_OwnerOnly(t *testing.T) {
	f, _ := setupMemberFixture(t)

	member, err := f.svc.AddMember(f.alice.ID, f.community.ID, f.bob.ID, f.role.ID)
	require.NoError(t, err)
	require.Equal(t, f.bob.ID, member.UserID)

	// 非 owner 不允许，即使已登录
	_, err = f.svc.AddMember(f.bob.ID, f.community.ID, f.carol.ID, f.role.ID)
	requireAppCode(t, err, pkg.CodeNotAllowed)
}

func TestAddMember_Duplicate(t *testing.T) {
	f, count := setupMemberFixture(t)

	_, err := f.svc.AddMember(f.alice.ID, f.community.ID, f.bob.ID, f.role.ID)
	require.NoError(t, err)
	before := count()

	_, err = f.svc.AddMember(f.alice.ID, f.community.ID, f.bob.ID, f.role.ID)
	requireAppCode(t, err, pkg.CodeResourceExists)
	require.Equal(t, before, count())
}

func TestAddMember_MissingReferences(t *testing.T) {
	f, _ := setupMemberFixture(t)

	_, err := f.svc.AddMember(f.alice.ID, "missing-community", f.bob.ID, f.role.ID)
	requireAppCode(t, err, pkg.CodeResourceNotFound)

	_, err = f.svc.AddMember(f.alice.ID, f.community.ID, "missing-user", f.role.ID)
	requireAppCode(t, err, pkg.CodeResourceNotFound)

	_, err = f.svc.AddMember(f.alice.ID, f.community.ID, f.bob.ID, "missing-role")
	requireAppCode(t, err, pkg.CodeResourceNotFound)

	_, err = f.svc.AddMember(f.alice.ID, "", f.bob.ID, f.role.ID)
	requireAppCode(t, err, pkg.CodeInvalidInput)
}

func TestRemoveMember(t *testing.T) {
	f, _ := setupMemberFixture(t)

	member, err := f.svc.AddMember(f.alice.ID, f.community.ID, f.bob.ID, f.role.ID)
	require.NoError(t, err)

	// 非 owner 不允许移除
	err = f.svc.RemoveMember(f.bob.ID, member.ID)
	requireAppCode(t, err, pkg.CodeNotAllowed)

	require.NoError(t, f.svc.RemoveMember(f.alice.ID, member.ID))

	// 重复删除同一 id 报 RESOURCE_NOT_FOUND
	err = f.svc.RemoveMember(f.alice.ID, member.ID)
	requireAppCode(t, err, pkg.CodeResourceNotFound)
}

func TestRemoveMember_Missing(t *testing.T) {
	f, count := setupMemberFixture(t)
	before := count()

	err := f.svc.RemoveMember(f.alice.ID, "missing-member")
	requireAppCode(t, err, pkg.CodeResourceNotFound)
	require.Equal(t, before, count())
}
