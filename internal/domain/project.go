package domain

import "time"

type Project struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	OwnerUID    string     `json:"owner_uid" gorm:"size:36;index;not null"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	IsArchived  bool       `json:"is_archived" gorm:"not null;default:false"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Users []User `json:"-" gorm:"many2many:project_users;"`
	Tasks []Task `json:"tasks" gorm:"constraint:OnDelete:CASCADE"`
}

// HasMember reports whether uid is on the project's member list.
// Members must be preloaded by the repository.
func (p *Project) HasMember(uid string) bool {
	for _, u := range p.Users {
		if u.UID == uid {
			return true
		}
	}
	return false
}
