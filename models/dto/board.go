package dto

// CreateBoardRequest 创建看板的请求体
//   - 角色列表中的每个元素必须是 enums 中的已知角色（role_name 规则见 controller.RegisterValidators），
//     服务层编码时会再次校验
type CreateBoardRequest struct {
	Name           string   `json:"name" binding:"required,max=100" example:"公告"`
	Description    *string  `json:"description" binding:"omitempty,max=500" example:"学生会通知"`
	CreateRoleList []string `json:"createRoleList" binding:"omitempty,dive,role_name" example:"PRESIDENT,ADMIN"`
	ModifyRoleList []string `json:"modifyRoleList" binding:"omitempty,dive,role_name" example:"ADMIN"`
	ReadRoleList   []string `json:"readRoleList" binding:"omitempty,dive,role_name"`
}

// UpdateBoardRequest 更新看板的请求体
// - 字段为 nil 表示不修改；角色列表传 [] 表示清空
type UpdateBoardRequest struct {
	Name           *string   `json:"name" binding:"omitempty,min=1,max=100"`
	Description    *string   `json:"description" binding:"omitempty,max=500"`
	CreateRoleList *[]string `json:"createRoleList" binding:"omitempty,dive,role_name"`
	ModifyRoleList *[]string `json:"modifyRoleList" binding:"omitempty,dive,role_name"`
	ReadRoleList   *[]string `json:"readRoleList" binding:"omitempty,dive,role_name"`
}

// IsEmpty 判断是否没有任何需要更新的字段
func (r *UpdateBoardRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil &&
		r.CreateRoleList == nil && r.ModifyRoleList == nil && r.ReadRoleList == nil
}

// ListBoardsRequest 看板分页查询参数
type ListBoardsRequest struct {
	Page     int `form:"page" binding:"required,gte=1"`
	PageSize int `form:"pageSize" binding:"required,gte=1,lte=100"`
}

// GetOffset 计算分页偏移量 (page - 1) * pageSize
func (r *ListBoardsRequest) GetOffset() int {
	if r.Page <= 0 {
		return 0
	}
	return (r.Page - 1) * r.PageSize
}

// GetLimit 获取每页数量
func (r *ListBoardsRequest) GetLimit() int {
	return r.PageSize
}
