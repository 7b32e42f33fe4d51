package models

import (
	"github.com/google/uuid"
)

// Team groups developers under at most one manager
type Team struct {
	BaseModel
	Name        string       `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Slug        string       `json:"slug" gorm:"size:120;not null;uniqueIndex"`
	Description string       `json:"description" gorm:"size:500" validate:"max=500"`
	ManagerID   *uuid.UUID   `json:"manager_id,omitempty" gorm:"type:uuid;index"`
	Manager     *User        `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
	Members     []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamMember is the junction between users and teams
type TeamMember struct {
	BaseModel
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user,priority:1"`
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user,priority:2;index"`
	Team   *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	User   *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
