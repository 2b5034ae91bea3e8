// Package handler 提供 HTTP 请求处理器
// 本文件处理应用解锁、注册、登录请求
package handler

import (
	"kama_contact_book/internal/dto/request"
	"kama_contact_book/internal/dto/respond"
	"kama_contact_book/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler 会话请求处理器
type SessionHandler struct {
	sessionSvc service.SessionService
}

// NewSessionHandler 创建会话处理器实例
func NewSessionHandler(sessionSvc service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// Unlock 输入应用口令
// POST /app/unlock
// 请求体: request.UnlockRequest
// 响应: respond.StateRespond
func (h *SessionHandler) Unlock(c *gin.Context) {
	var req request.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.sessionSvc.Unlock(req.Passphrase); err != nil {
		HandleError(c, err)
		return
	}
	h.State(c)
}

// State 查询当前状态
// GET /app/state
// 响应: respond.StateRespond
func (h *SessionHandler) State(c *gin.Context) {
	state, user := h.sessionSvc.State()
	HandleSuccess(c, respond.StateRespond{State: string(state), CurrentUser: user})
}

// Register 注册账号，不会自动登录
// POST /register
// 请求体: request.RegisterRequest
// 响应: nil
func (h *SessionHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.sessionSvc.Signup(req.Username, req.Password); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// Login 登录
// POST /login
// 请求体: request.LoginRequest
// 响应: respond.LoginRespond
func (h *SessionHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	res, err := h.sessionSvc.Login(req.Username, req.Password)
	if err != nil {
		HandleError(c, err)
		return
	}
	state, _ := h.sessionSvc.State()
	zap.L().Debug("login", zap.String("username", res.Username))
	HandleSuccess(c, respond.LoginRespond{
		Username:    res.Username,
		AccessToken: res.AccessToken,
		State:       string(state),
	})
}
