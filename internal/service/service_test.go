package service

import (
	"testing"

	"Nova_Community/internal/model"
	"Nova_Community/internal/pkg"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB 内存 sqlite，单连接避免 :memory: 各连接各一份库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.Community{},
		&model.Member{},
		&model.MembershipOutbox{},
	))
	return db
}

func initTestJWT(t *testing.T) {
	t.Helper()
	require.NoError(t, pkg.InitJWT("test-secret"))
}

func signupUser(t *testing.T, db *gorm.DB, name, email string) *model.User {
	t.Helper()
	user, _, err := NewUserService(db, pkg.SMTPConfig{}).Signup(name, email, "password")
	require.NoError(t, err)
	return user
}

func requireAppCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*pkg.AppError)
	require.True(t, ok, "expected *pkg.AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.Code)
}
