// file: internals/features/users/employee/model/employee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeModel maps external identity (JWT subject uuid) to the internal int
// key every response row is indexed by.
type EmployeeModel struct {
	ID         int       `gorm:"column:id;primaryKey" json:"id"`
	UserUUID   uuid.UUID `gorm:"column:user_uuid;type:uuid;not null;uniqueIndex" json:"user_uuid"`
	Name       string    `gorm:"column:name;type:text;not null" json:"name"`
	Email      string    `gorm:"column:email;type:text" json:"email,omitempty"`
	JobTitle   string    `gorm:"column:job_title;type:text" json:"job_title,omitempty"`
	Department string    `gorm:"column:department;type:text" json:"department,omitempty"`
	Role       string    `gorm:"column:role;type:text;not null;default:employee" json:"role"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
}

func (EmployeeModel) TableName() string { return "employees" }
