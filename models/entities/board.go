package entities

import "database/sql"

// Board 看板实体
// - 表名: tb_board
// - 三个角色字段以 "," 拼接的字符串存储，编解码见 enums.EncodeRoleList / enums.DecodeRoleList
// - 关系: 一对多拥有 Post，删除看板时帖子随之删除
type Board struct {
	BaseModel

	// 看板名称，必填
	Name string `gorm:"type:varchar(100);not null"`

	// 看板描述，可为 NULL
	Description sql.NullString `gorm:"type:varchar(500)"`

	// 允许发帖的角色列表，例如 "ADMIN,PRESIDENT"
	CreateRoles sql.NullString `gorm:"column:create_role_list;type:varchar(512)"`

	// 允许修改帖子的角色列表
	ModifyRoles sql.NullString `gorm:"column:modify_role_list;type:varchar(512)"`

	// 允许阅读的角色列表
	ReadRoles sql.NullString `gorm:"column:read_role_list;type:varchar(512)"`

	// 看板拥有的帖子。数据库层面 ON DELETE CASCADE 负责物理删除；
	// 软删除由 BoardRepository.DeleteBoardCascade 在同一事务中显式处理。
	Posts []Post `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
}

func (Board) TableName() string {
	return "tb_board"
}
