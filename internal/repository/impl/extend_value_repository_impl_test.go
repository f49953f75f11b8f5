package impl

import (
	"context"
	"database/sql"
	"strconv"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gms-admin/internal/repository/entity"
)

// setupTestDB 设置测试数据库连接
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "host=localhost port=5432 user=gms_user password=gms_test dbname=gms_db sslmode=disable"
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Skipf("无法连接测试数据库: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("跳过依赖数据库的测试，原因: %v", err)
	}

	return db
}

func TestExtendValueRepository_UpsertAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("跳过集成测试")
	}

	db := setupTestDB(t)
	defer db.Close()

	repo := NewExtendValueRepository(db)
	ctx := context.Background()

	// 用时间戳避免与历史数据冲突
	characterID := int(time.Now().Unix() % 1000000)
	record := entity.NewCharacterRate(characterID, "expRate", 2.5)

	err := repo.Upsert(ctx, record)
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)

	got, err := repo.GetByKey(ctx, strconv.Itoa(characterID), "expRate")
	require.NoError(t, err)
	assert.Equal(t, entity.ExtendTypeCharacter, got.ExtendType)
	assert.Equal(t, "2.5", got.ExtendValue)

	rate, err := got.RateValue()
	require.NoError(t, err)
	assert.Equal(t, 2.5, rate)

	// 清理测试数据
	_, err = db.ExecContext(ctx, "DELETE FROM extend_value WHERE extend_id = $1", strconv.Itoa(characterID))
	require.NoError(t, err)
}

func TestExtendValueRepository_UpsertOverwrites(t *testing.T) {
	if testing.Short() {
		t.Skip("跳过集成测试")
	}

	db := setupTestDB(t)
	defer db.Close()

	repo := NewExtendValueRepository(db)
	ctx := context.Background()

	characterID := int(time.Now().Unix()%1000000) + 1000000
	extendID := strconv.Itoa(characterID)

	require.NoError(t, repo.Upsert(ctx, entity.NewCharacterRate(characterID, "mesoRate", 2)))
	require.NoError(t, repo.Upsert(ctx, entity.NewCharacterRate(characterID, "mesoRate", 4)))

	got, err := repo.GetByKey(ctx, extendID, "mesoRate")
	require.NoError(t, err)
	assert.Equal(t, "4", got.ExtendValue)

	// 同一角色可以有多个倍率项
	require.NoError(t, repo.Upsert(ctx, entity.NewCharacterRate(characterID, "dropRate", 3)))
	values, err := repo.ListByExtendID(ctx, extendID)
	require.NoError(t, err)
	assert.Len(t, values, 2)

	_, err = db.ExecContext(ctx, "DELETE FROM extend_value WHERE extend_id = $1", extendID)
	require.NoError(t, err)
}

func TestExtendValueRepository_GetByKeyMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("跳过集成测试")
	}

	db := setupTestDB(t)
	defer db.Close()

	repo := NewExtendValueRepository(db)

	_, err := repo.GetByKey(context.Background(), "no-such-id", "expRate")
	require.Error(t, err)
}
