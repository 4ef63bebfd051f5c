package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	AnalystPending = "pending"
	AnalystActive  = "active"
)

// Analyst is a dashboard account. New signups are plain users awaiting approval.
type Analyst struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id" bson:"_id"`
	Email     string    `gorm:"not null;size:255;uniqueIndex" json:"email" bson:"email"`
	Password  string    `gorm:"not null" json:"-" bson:"password"`
	FirstName string    `gorm:"size:100" json:"firstName" bson:"firstName"`
	LastName  string    `gorm:"size:100" json:"lastName" bson:"lastName"`
	Role      string    `gorm:"size:20;default:'user'" json:"role" bson:"role"`
	Status    string    `gorm:"size:20;default:'pending'" json:"status" bson:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// BeforeCreate ensures the ID is set before insert.
func (a *Analyst) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (Analyst) TableName() string {
	return "analysts"
}
