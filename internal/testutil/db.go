package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/campus-social/internal/model"
	"github.com/d60-Lab/campus-social/pkg/database"
)

var dbSeq atomic.Int64

// NewDB 每个测试独立的内存 sqlite；单连接，事务内只能使用 tx
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:campus_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig("silent"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// CreateUser 直接落库一个已验证的学生账号
func CreateUser(t testing.TB, db *gorm.DB, first, last string) *model.User {
	t.Helper()
	u := &model.User{
		FirstName: first,
		LastName:  last,
		Email:     fmt.Sprintf("%s.%s.%d@maine.edu", first, last, dbSeq.Add(1)),
		Role:      model.RoleStudent,
		Verified:  true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}
