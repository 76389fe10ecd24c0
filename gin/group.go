package gin

import (
	"github.com/gin-gonic/gin"

	"github.com/ahmadsaad58/todo/errors"
	"github.com/ahmadsaad58/todo/group"
)

type GroupHandler struct {
	Store *group.Store
}

func (h *GroupHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/groups", JSONFormatter(h.Create))
	router.GET("/api/groups/:group", JSONFormatter(h.Get))
	router.DELETE("/api/groups/:group", JSONFormatter(h.Delete))

	router.POST("/api/groups/:group/members", JSONFormatter(h.AddMember))
	router.DELETE("/api/groups/:group/members/:member", JSONFormatter(h.RemoveMember))

	router.GET("/api/groups/:group/members/:member/items", JSONFormatter(h.Items))
	router.POST("/api/groups/:group/members/:member/items", JSONFormatter(h.AddItems))
	router.DELETE("/api/groups/:group/members/:member/items", JSONFormatter(h.RemoveItems))
}

func (h *GroupHandler) Create(c *gin.Context) (interface{}, error) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := c.BindJSON(&payload); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}
	if payload.Name == "" {
		return nil, errors.New("name is required", errors.BadRequest())
	}

	id, err := h.Store.CreateGroup(payload.Name)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": map[string]string{"id": id, "name": payload.Name},
	}, nil
}

func (h *GroupHandler) Get(c *gin.Context) (interface{}, error) {
	g, err := h.Store.Group(c.Param("group"))
	if err != nil {
		return nil, err
	}

	members, err := g.Members()
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": map[string]interface{}{
			"id":      g.ID(),
			"name":    g.Name(),
			"members": members,
		},
	}, nil
}

func (h *GroupHandler) Delete(c *gin.Context) (interface{}, error) {
	g, err := h.Store.Group(c.Param("group"))
	if err != nil {
		return nil, err
	}

	if err := g.Delete(); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": "ok",
	}, nil
}

func (h *GroupHandler) AddMember(c *gin.Context) (interface{}, error) {
	g, err := h.Store.Group(c.Param("group"))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Name string `json:"name"`
	}
	if err := c.BindJSON(&payload); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}
	if payload.Name == "" {
		return nil, errors.New("name is required", errors.BadRequest())
	}

	if err := g.AddUser(payload.Name); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": "ok",
	}, nil
}

func (h *GroupHandler) RemoveMember(c *gin.Context) (interface{}, error) {
	g, err := h.Store.Group(c.Param("group"))
	if err != nil {
		return nil, err
	}

	if err := g.RemoveUser(c.Param("member")); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": "ok",
	}, nil
}

func (h *GroupHandler) Items(c *gin.Context) (interface{}, error) {
	g, err := h.Store.Group(c.Param("group"))
	if err != nil {
		return nil, err
	}

	items, err := g.Items(c.Param("member"))
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": items,
	}, nil
}

func (h *GroupHandler) AddItems(c *gin.Context) (interface{}, error) {
	g, err := h.Store.Group(c.Param("group"))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Items []string `json:"items"`
	}
	if err := c.BindJSON(&payload); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	if err := g.AddItems(c.Param("member"), payload.Items...); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": "ok",
	}, nil
}

func (h *GroupHandler) RemoveItems(c *gin.Context) (interface{}, error) {
	g, err := h.Store.Group(c.Param("group"))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Indices []int `json:"indices"`
	}
	if err := c.BindJSON(&payload); err != nil {
		return nil, errors.New("invalid payload", errors.BadRequest(), errors.WithCause(err))
	}

	if err := g.RemoveItems(c.Param("member"), payload.Indices...); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"data": "ok",
	}, nil
}
