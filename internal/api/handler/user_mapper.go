package handler

import (
	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

// --- Request → domain ---

func toUser(req userRequest) domain.User {
	u := domain.NewUser(req.Username, req.Email, req.Password).WithID(req.ID)
	if req.IsActive != nil {
		u = u.WithActive(*req.IsActive)
	}
	if req.LastLogin != nil {
		u = u.WithLastLogin(req.LastLogin.UTC())
	}
	return u
}

func toResource(req resourceRequest) domain.Resource {
	res := domain.Resource{
		ID:         req.ID,
		Name:       req.Name,
		Type:       req.Type,
		Permission: req.Permission,
		Icon:       req.Icon,
		URL:        req.URL,
	}
	if req.ParentID != nil {
		res = res.WithParent(*req.ParentID)
	}
	return res
}
