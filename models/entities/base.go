package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel 是所有持久化实体共用的审计字段，通过嵌入组合进各实体。
// - ID: UUID 字符串，创建时由 BeforeCreate 钩子生成，之后不可修改
// - CreatedAt / UpdatedAt: GORM 自动维护
// - DeletedAt: 软删除标记，GORM 查询会自动附加 deleted_at IS NULL
type BaseModel struct {
	ID        string         `gorm:"type:char(36);primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate 为尚未指定 ID 的记录分配 UUID
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
