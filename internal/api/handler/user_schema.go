package handler

import "time"

// errorResponse documents the error envelope rendered by the error handler.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// userRequest is the body of POST and PUT /sys/user. id is ignored on create
// and required on update. createdAt is accepted but never written.
type userRequest struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"            validate:"required,max=64"`
	Email     *string    `json:"email,omitempty"     validate:"omitempty,email"`
	Password  string     `json:"password"            validate:"required"`
	IsActive  *int       `json:"isActive,omitempty"  validate:"omitempty,oneof=0 1"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// resourceRequest is the body of POST and PUT /sys/resource.
type resourceRequest struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"                validate:"required,max=128"`
	Type       int    `json:"type"`
	Permission string `json:"permission,omitempty"`
	ParentID   *int64 `json:"parentId,omitempty"  validate:"omitempty,gt=0"`
	Icon       string `json:"icon,omitempty"`
	URL        string `json:"url,omitempty"`
}
