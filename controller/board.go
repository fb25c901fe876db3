package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/board_service/models/dto"
	"github.com/Xushengqwer/board_service/models/enums"
	"github.com/Xushengqwer/board_service/models/vo"
	"github.com/Xushengqwer/board_service/myErrors"
	"github.com/Xushengqwer/board_service/service"
)

// BoardController 看板相关的 HTTP 接口
type BoardController struct {
	boardService service.BoardService
}

// NewBoardController 创建 BoardController 实例
func NewBoardController(boardService service.BoardService) *BoardController {
	return &BoardController{boardService: boardService}
}

// respondServiceError 把服务层错误映射为 HTTP 状态码。
// 角色字段损坏是服务端数据问题，返回 500 而不是 4xx。
func respondServiceError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, enums.ErrInvalidRoleName):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, action+"失败: "+err.Error())
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "看板不存在")
	case errors.Is(err, enums.ErrMalformedRoleField):
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "看板数据损坏，请联系管理员")
	case errors.Is(err, myErrors.ErrArchiveFailed):
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, action+"失败: 归档快照未能保存")
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, action+"失败: "+err.Error())
	}
}

// CreateBoard 创建看板
// @Summary      创建看板
// @Description  创建一个新看板。三个角色列表中的元素必须是已知角色名，不能包含逗号。
// @Tags         boards (看板)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBoardRequest true "看板信息"
// @Success      200 {object} vo.BoardDetailResponseWrapper "创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效或包含未知角色"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/boards [post]
func (ctrl *BoardController) CreateBoard(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	detail, err := ctrl.boardService.CreateBoard(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, "创建看板", err)
		return
	}
	response.RespondSuccess(c, detail, "看板创建成功")
}

// ListBoards 分页获取看板列表
// @Summary      看板列表
// @Description  按创建时间倒序分页返回看板摘要（含帖子数），不包含角色列表。
// @Tags         boards (看板)
// @Produce      json
// @Param        page query int true "页码 (从1开始)" minimum(1) default(1)
// @Param        pageSize query int true "每页数量" minimum(1) maximum(100) default(10)
// @Success      200 {object} vo.BoardPageResponseWrapper "成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的分页参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/boards [get]
func (ctrl *BoardController) ListBoards(c *gin.Context) {
	var req dto.ListBoardsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	page, err := ctrl.boardService.ListBoards(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, "获取看板列表", err)
		return
	}
	response.RespondSuccess(c, page, "看板列表获取成功")
}

// GetBoardDetail 获取看板详情
// @Summary      看板详情
// @Description  返回看板的名称、描述以及创建/修改/阅读三类角色列表。
// @Tags         boards (看板)
// @Produce      json
// @Param        id path string true "看板 ID"
// @Success      200 {object} vo.BoardDetailResponseWrapper "成功"
// @Failure      404 {object} vo.BaseResponseWrapper "看板不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "看板数据损坏或服务器内部错误"
// @Router       /api/v1/board/boards/{id} [get]
func (ctrl *BoardController) GetBoardDetail(c *gin.Context) {
	detail, err := ctrl.boardService.GetBoardDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, "获取看板详情", err)
		return
	}
	response.RespondSuccess(c, detail, "看板详情获取成功")
}

// UpdateBoard 更新看板
// @Summary      更新看板
// @Description  部分更新。未提供的字段保持不变；角色列表传空数组表示清空。
// @Tags         boards (看板)
// @Accept       json
// @Produce      json
// @Param        id path string true "看板 ID"
// @Param        request body dto.UpdateBoardRequest true "需要更新的字段"
// @Success      200 {object} vo.BoardDetailResponseWrapper "更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求参数无效或包含未知角色"
// @Failure      404 {object} vo.BaseResponseWrapper "看板不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/board/boards/{id} [put]
func (ctrl *BoardController) UpdateBoard(c *gin.Context) {
	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求体: "+err.Error())
		return
	}

	detail, err := ctrl.boardService.UpdateBoard(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, "更新看板", err)
		return
	}
	response.RespondSuccess(c, detail, "看板更新成功")
}

// DeleteBoard 删除看板及其全部帖子
// @Summary      删除看板
// @Description  先归档看板快照，再在一个事务中删除看板和它拥有的帖子。
// @Tags         boards (看板)
// @Produce      json
// @Param        id path string true "看板 ID"
// @Success      200 {object} vo.BaseResponseWrapper "删除成功"
// @Failure      404 {object} vo.BaseResponseWrapper "看板不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "归档失败或服务器内部错误"
// @Router       /api/v1/board/boards/{id} [delete]
func (ctrl *BoardController) DeleteBoard(c *gin.Context) {
	if err := ctrl.boardService.DeleteBoard(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, "删除看板", err)
		return
	}
	response.RespondSuccess[any](c, nil, "看板删除成功")
}

// ListRoles 列出可用的角色名
// @Summary      角色列表
// @Description  返回可以出现在看板角色列表中的全部角色名。
// @Tags         boards (看板)
// @Produce      json
// @Success      200 {object} vo.RoleListResponseWrapper "成功"
// @Router       /api/v1/board/roles [get]
func (ctrl *BoardController) ListRoles(c *gin.Context) {
	response.RespondSuccess(c, vo.RoleListVO{Roles: enums.RoleNames()}, "角色列表获取成功")
}

// RegisterRoutes 注册 BoardController 的路由
func (ctrl *BoardController) RegisterRoutes(group *gin.RouterGroup) {
	boards := group.Group("/boards")
	{
		boards.POST("", ctrl.CreateBoard)       // POST /api/v1/board/boards
		boards.GET("", ctrl.ListBoards)         // GET /api/v1/board/boards
		boards.GET("/:id", ctrl.GetBoardDetail) // GET /api/v1/board/boards/:id
		boards.PUT("/:id", ctrl.UpdateBoard)    // PUT /api/v1/board/boards/:id
		boards.DELETE("/:id", ctrl.DeleteBoard) // DELETE /api/v1/board/boards/:id
	}
	group.GET("/roles", ctrl.ListRoles) // GET /api/v1/board/roles
}
