package domain

// Resource is a node in the permission/menu tree. ParentID, when set, refers
// to another Resource.
type Resource struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Type       int    `json:"type"`
	Permission string `json:"permission,omitempty"`
	ParentID   *int64 `json:"parentId,omitempty"`
	Icon       string `json:"icon,omitempty"`
	URL        string `json:"url,omitempty"`
}

func (r Resource) WithID(id int64) Resource {
	r.ID = id
	return r
}

func (r Resource) WithParent(parentID int64) Resource {
	r.ParentID = &parentID
	return r
}

// IsRoot reports whether r has no parent.
func (r Resource) IsRoot() bool {
	return r.ParentID == nil
}
