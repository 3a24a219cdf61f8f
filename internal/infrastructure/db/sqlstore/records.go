package sqlstore

import (
	"time"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

type userRecord struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Username  string     `gorm:"size:64;not null;uniqueIndex"`
	Email     *string    `gorm:"size:255"`
	Password  string     `gorm:"size:255;not null"`
	IsActive  int        `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null"`
	LastLogin *time.Time
}

func (userRecord) TableName() string {
	return "users"
}

type resourceRecord struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	Name       string          `gorm:"size:128;not null"`
	Type       int             `gorm:"not null"`
	Permission string          `gorm:"size:255"`
	ParentID   *int64          `gorm:"index"`
	Parent     *resourceRecord `gorm:"foreignKey:ParentID;constraint:OnDelete:SET NULL"`
	Icon       string          `gorm:"size:255"`
	URL        string          `gorm:"column:url;size:512"`
}

func (resourceRecord) TableName() string {
	return "sys_resource"
}

var (
	userMutableColumns     = []string{"username", "email", "password", "is_active", "last_login"}
	userSummaryColumns     = []string{"id", "username", "email", "last_login"}
	resourceMutableColumns = []string{"name", "type", "permission", "parent_id", "icon", "url"}
)

func toUserRecord(u domain.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

func (r userRecord) toDomain() domain.User {
	return domain.User{
		ID:        r.ID,
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		LastLogin: r.LastLogin,
	}
}

func (r userRecord) toSummary() domain.UserSummary {
	return domain.UserSummary{
		ID:        r.ID,
		Username:  r.Username,
		Email:     r.Email,
		LastLogin: r.LastLogin,
	}
}

func toResourceRecord(res domain.Resource) resourceRecord {
	return resourceRecord{
		ID:         res.ID,
		Name:       res.Name,
		Type:       res.Type,
		Permission: res.Permission,
		ParentID:   res.ParentID,
		Icon:       res.Icon,
		URL:        res.URL,
	}
}

func (r resourceRecord) toDomain() domain.Resource {
	return domain.Resource{
		ID:         r.ID,
		Name:       r.Name,
		Type:       r.Type,
		Permission: r.Permission,
		ParentID:   r.ParentID,
		Icon:       r.Icon,
		URL:        r.URL,
	}
}
