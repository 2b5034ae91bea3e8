// Package handler 提供 HTTP 请求处理器
// 本文件处理联系人相关的 API 请求
// 所有接口都要求 JWT 中的用户就是当前登录用户
package handler

import (
	"kama_contact_book/internal/dto/request"
	"kama_contact_book/internal/dto/respond"
	"kama_contact_book/internal/model"
	"kama_contact_book/internal/service"
	"kama_contact_book/internal/service/contact"
	"kama_contact_book/pkg/constants"
	"kama_contact_book/pkg/enum/contact/contact_status_enum"
	"kama_contact_book/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// ContactHandler 联系人请求处理器
type ContactHandler struct {
	sessionSvc service.SessionService
}

// NewContactHandler 创建联系人处理器实例
func NewContactHandler(sessionSvc service.SessionService) *ContactHandler {
	return &ContactHandler{sessionSvc: sessionSvc}
}

// store 取出当前请求用户的联系人存储
func (h *ContactHandler) store(c *gin.Context) (*contact.Store, bool) {
	store, err := h.sessionSvc.Store(c.GetString(constants.CONTEXT_USER_KEY))
	if err != nil {
		HandleError(c, err)
		return nil, false
	}
	return store, true
}

// List 获取全部联系人
// GET /contact/list
// 响应: respond.ContactListRespond
func (h *ContactHandler) List(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	handleList(c, store.ListAll())
}

// Search 按姓名或电话搜索
// GET /contact/search?term=xxx
// 响应: respond.ContactListRespond
func (h *ContactHandler) Search(c *gin.Context) {
	var req request.SearchContactRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}
	handleList(c, store.SearchAll(req.Term))
}

// Filter 按状态过滤
// GET /contact/filter?status=favourite
// 响应: respond.ContactListRespond
func (h *ContactHandler) Filter(c *gin.Context) {
	var req request.FilterContactRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}
	list, err := store.FilterByStatus(contact_status_enum.Status(req.Status))
	if err != nil {
		HandleError(c, err)
		return
	}
	handleList(c, list)
}

// Add 添加联系人
// POST /contact/add
// 请求体: request.AddContactRequest
// 响应: respond.ContactMutationRespond
func (h *ContactHandler) Add(c *gin.Context) {
	var req request.AddContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}
	created, err := store.Add(req.Name, req.Phone, req.Email)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.ContactMutationRespond{
		Affected: []respond.ContactRespond{respond.NewContactRespond(created)},
		Contacts: respond.NewContactList(store.ListAll()),
	})
}

// Edit 编辑联系人
// POST /contact/edit
// 请求体: request.EditContactRequest
// 响应: respond.ContactMutationRespond
func (h *ContactHandler) Edit(c *gin.Context) {
	var req request.EditContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}
	updated, err := store.Edit(toIdentity(req.Target), req.Name, req.Phone, req.Email)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.ContactMutationRespond{
		Affected: []respond.ContactRespond{respond.NewContactRespond(updated)},
		Contacts: respond.NewContactList(store.ListAll()),
	})
}

// Delete 删除一个或多个联系人
// POST /contact/delete
// 请求体: request.DeleteContactRequest
// 响应: respond.ContactMutationRespond
func (h *ContactHandler) Delete(c *gin.Context) {
	var req request.DeleteContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}
	removed, err := store.Delete(toIdentities(req.Targets)...)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.ContactMutationRespond{
		Affected: []respond.ContactRespond{},
		Removed:  removed,
		Contacts: respond.NewContactList(store.ListAll()),
	})
}

// ToggleStatus 切换收藏或拉黑
// POST /contact/toggleStatus
// 请求体: request.ToggleStatusRequest
// 响应: respond.ContactMutationRespond
func (h *ContactHandler) ToggleStatus(c *gin.Context) {
	var req request.ToggleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	status, ok := contact_status_enum.Parse(req.Status)
	if !ok {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	store, ok := h.store(c)
	if !ok {
		return
	}
	updated, err := store.ToggleStatus(status, toIdentities(req.Targets)...)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, respond.ContactMutationRespond{
		Affected: respond.NewContactList(updated),
		Contacts: respond.NewContactList(store.ListAll()),
	})
}

func handleList(c *gin.Context, list []model.Contact) {
	HandleSuccess(c, respond.ContactListRespond{
		Total:    len(list),
		Contacts: respond.NewContactList(list),
	})
}

func toIdentity(t request.ContactTarget) contact.Identity {
	return contact.Identity{ID: t.Id, Name: t.Name, Phone: t.Phone}
}

func toIdentities(targets []request.ContactTarget) []contact.Identity {
	ids := make([]contact.Identity, 0, len(targets))
	for _, t := range targets {
		ids = append(ids, toIdentity(t))
	}
	return ids
}
