package vo

// 以下包装器仅用于 swag 生成文档，对应 response.APIResponse[T] 的实际输出结构。

// BoardDetailResponseWrapper 对应 response.APIResponse[vo.BoardDetailVO]
type BoardDetailResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    BoardDetailVO `json:"data"`
}

// BoardPageResponseWrapper 对应 response.APIResponse[vo.BoardPageVO]
type BoardPageResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    BoardPageVO `json:"data"`
}

// RoleListResponseWrapper 对应 response.APIResponse[vo.RoleListVO]
type RoleListResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    RoleListVO `json:"data"`
}

// BaseResponseWrapper 只包含 Code 和 Message，用于错误响应和 DELETE 等无数据的成功响应
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message" example:"success"`
}
