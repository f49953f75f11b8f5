package interfaces

import (
	"context"

	"gms-admin/internal/repository/entity"
)

// ExtendValueRepository 扩展属性仓储接口
type ExtendValueRepository interface {
	// Upsert 按 (extend_id, extend_name) 写入或覆盖记录
	Upsert(ctx context.Context, value *entity.ExtendValueDO) error

	// GetByKey 按 (extend_id, extend_name) 查询记录
	GetByKey(ctx context.Context, extendID, extendName string) (*entity.ExtendValueDO, error)

	// ListByExtendID 查询某个对象的全部扩展属性
	ListByExtendID(ctx context.Context, extendID string) ([]*entity.ExtendValueDO, error)
}
