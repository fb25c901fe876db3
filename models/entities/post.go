package entities

// Post 看板下的帖子。本服务只关心它与看板的归属关系，正文等字段保持最小集合。
// - 表名: tb_post
type Post struct {
	BaseModel

	// 所属看板，外键指向 tb_board.id
	BoardID string `gorm:"type:char(36);not null;index"`

	Title string `gorm:"type:varchar(255);not null"`

	Content string `gorm:"type:text;not null"`

	// 作者ID，来自用户服务
	AuthorID string `gorm:"type:char(36);not null"`
}

func (Post) TableName() string {
	return "tb_post"
}
