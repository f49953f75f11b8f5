package handler

import (
	"github.com/labstack/echo/v4"

	"gms-admin/internal/modules/give/dto"
	"gms-admin/internal/modules/give/service"
	"gms-admin/internal/pkg/response"
)

// GiveHandler 后台资源发放接口
type GiveHandler struct {
	service    *service.GiveService
	respWriter response.Writer
}

func NewGiveHandler(s *service.GiveService, respWriter response.Writer) *GiveHandler {
	return &GiveHandler{service: s, respWriter: respWriter}
}

// Give 向单个玩家或全服在线玩家发放资源
// @Summary 管理员发放资源
// @Description player_id 为 0 时对所有大区的全部在线角色发放
// @Tags Give
// @Accept json
// @Produce json
// @Param request body dto.GiveResourceRequest true "发放请求"
// @Success 200 {object} response.APIResponse{data=dto.GiveResourceResponse}
// @Failure 400 {object} response.APIResponse
// @Failure 500 {object} response.APIResponse
// @Router /admin/tools/give [post]
func (h *GiveHandler) Give(c echo.Context) error {
	var req dto.GiveResourceRequest
	if err := c.Bind(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, "请求格式错误")
	}
	if err := c.Validate(&req); err != nil {
		return response.EchoBadRequest(c, h.respWriter, err.Error())
	}

	respData, err := h.service.Give(c.Request().Context(), &req)
	if err != nil {
		return response.EchoError(c, h.respWriter, err)
	}
	return response.EchoOK(c, h.respWriter, respData)
}

// RegisterRoutes 挂载发放相关路由
func (h *GiveHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/tools/give", h.Give)
}
