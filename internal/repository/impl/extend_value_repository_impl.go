package impl

import (
	"context"
	"database/sql"
	"time"

	"github.com/friendsofgo/errors"
	"github.com/google/uuid"

	"gms-admin/internal/repository/entity"
	"gms-admin/internal/repository/interfaces"
)

type extendValueRepositoryImpl struct {
	db *sql.DB
}

// NewExtendValueRepository 创建扩展属性仓储实例
func NewExtendValueRepository(db *sql.DB) interfaces.ExtendValueRepository {
	return &extendValueRepositoryImpl{db: db}
}

// Upsert 按 (extend_id, extend_name) 写入或覆盖记录
func (r *extendValueRepositoryImpl) Upsert(ctx context.Context, value *entity.ExtendValueDO) error {
	if value.ID == "" {
		value.ID = uuid.New().String()
	}
	now := time.Now()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO extend_value (id, extend_id, extend_type, extend_name, extend_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (extend_id, extend_name)
		DO UPDATE SET extend_value = EXCLUDED.extend_value,
		              extend_type  = EXCLUDED.extend_type,
		              updated_at   = EXCLUDED.updated_at`,
		value.ID, value.ExtendID, value.ExtendType, value.ExtendName, value.ExtendValue, now,
	)
	if err != nil {
		return errors.Wrap(err, "写入扩展属性失败")
	}
	return nil
}

// GetByKey 按 (extend_id, extend_name) 查询记录
func (r *extendValueRepositoryImpl) GetByKey(ctx context.Context, extendID, extendName string) (*entity.ExtendValueDO, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, extend_id, extend_type, extend_name, extend_value, created_at, updated_at
		FROM extend_value
		WHERE extend_id = $1 AND extend_name = $2`,
		extendID, extendName,
	)

	var value entity.ExtendValueDO
	err := row.Scan(&value.ID, &value.ExtendID, &value.ExtendType, &value.ExtendName,
		&value.ExtendValue, &value.CreatedAt, &value.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.Errorf("扩展属性不存在: %s/%s", extendID, extendName)
	}
	if err != nil {
		return nil, errors.Wrap(err, "查询扩展属性失败")
	}
	return &value, nil
}

// ListByExtendID 查询某个对象的全部扩展属性
func (r *extendValueRepositoryImpl) ListByExtendID(ctx context.Context, extendID string) ([]*entity.ExtendValueDO, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, extend_id, extend_type, extend_name, extend_value, created_at, updated_at
		FROM extend_value
		WHERE extend_id = $1
		ORDER BY extend_name`,
		extendID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "查询扩展属性列表失败")
	}
	defer rows.Close()

	var values []*entity.ExtendValueDO
	for rows.Next() {
		var value entity.ExtendValueDO
		if err := rows.Scan(&value.ID, &value.ExtendID, &value.ExtendType, &value.ExtendName,
			&value.ExtendValue, &value.CreatedAt, &value.UpdatedAt); err != nil {
			return nil, errors.Wrap(err, "扫描扩展属性失败")
		}
		values = append(values, &value)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "遍历扩展属性失败")
	}
	return values, nil
}
