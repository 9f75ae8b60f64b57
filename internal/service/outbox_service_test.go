package service

import (
	"context"
	"errors"
	"testing"

	"Nova_Community/internal/model"
	"Nova_Community/internal/repository/mysql"

	"github.com/stretchr/testify/require"
)

func TestOutbox_EventsWrittenWithMutations(t *testing.T) {
	initTestJWT(t)
	db := newTestDB(t)
	alice := signupUser(t, db, "Alice", "alice@example.com")
	bob := signupUser(t, db, "Bob", "bob@example.com")

	community, err := NewCommunityService(db).CreateCommunity(alice.ID, "Team Rocket")
	require.NoError(t, err)

	role, err := NewRoleService(db).CreateRole(model.RoleCommunityMember)
	require.NoError(t, err)

	memberSvc := NewMemberService(db)
	member, err := memberSvc.AddMember(alice.ID, community.ID, bob.ID, role.ID)
	require.NoError(t, err)
	require.NoError(t, memberSvc.RemoveMember(alice.ID, member.ID))

	var rows []model.MembershipOutbox
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 3)
	require.Equal(t, "community_created", rows[0].EventType)
	require.Equal(t, "member_added", rows[1].EventType)
	require.Equal(t, "member_removed", rows[2].EventType)
	for _, row := range rows {
		require.EqualValues(t, 0, row.Status)
	}
}

func TestOutboxRelayer_Drain(t *testing.T) {
	initTestJWT(t)
	db := newTestDB(t)
	alice := signupUser(t, db, "Alice", "alice@example.com")
	_, err := NewCommunityService(db).CreateCommunity(alice.ID, "Team Rocket")
	require.NoError(t, err)

	var sent []string
	relayer := NewOutboxRelayer(db, func(ctx context.Context, ob *model.MembershipOutbox) error {
		sent = append(sent, ob.EventType)
		return nil
	})
	relayer.drainOnce(context.Background())

	require.Equal(t, []string{"community_created"}, sent)

	pending, err := mysql.NewOutboxRepository(db).ListPending(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestOutboxRelayer_RetryOnSendFailure(t *testing.T) {
	initTestJWT(t)
	db := newTestDB(t)
	alice := signupUser(t, db, "Alice", "alice@example.com")
	_, err := NewCommunityService(db).CreateCommunity(alice.ID, "Team Rocket")
	require.NoError(t, err)

	relayer := NewOutboxRelayer(db, func(ctx context.Context, ob *model.MembershipOutbox) error {
		return errors.New("broker down")
	})
	relayer.drainOnce(context.Background())

	var rows []model.MembershipOutbox
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.EqualValues(t, 0, rows[0].Status) // 仍然 pending
	require.Equal(t, 1, rows[0].Retry)
}
