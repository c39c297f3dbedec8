package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Registration struct {
	ID           uint      `gorm:"primaryKey" json:"id" example:"1"`
	FullName     string    `gorm:"size:50;not null" json:"fullName" validate:"required,min=2,max=50" example:"Asha Verma"`
	Email        string    `gorm:"size:254;not null;uniqueIndex" json:"email" validate:"required,email" example:"asha@example.com"`
	Phone        string    `gorm:"size:10;not null" json:"phone" validate:"required,len=10,number" example:"9876543210"`
	DOB          time.Time `gorm:"column:dob;type:date;not null" json:"dob" validate:"required,adult" example:"1995-04-12T00:00:00Z"`
	Gender       string    `gorm:"size:10;not null" json:"gender" validate:"required,oneof=Male Female Other" example:"Female"`
	PredictedAge *int      `json:"predictedAge" example:"38"`
	Address1     string    `gorm:"size:100;not null" json:"address1" validate:"required,max=100"`
	Address2     string    `gorm:"size:100;not null" json:"address2" validate:"max=100"`
	Country      string    `gorm:"size:20;not null" json:"country" validate:"required,oneof=India USA Canada" example:"India"`
	State        string    `gorm:"size:50;not null" json:"state" validate:"required" example:"Karnataka"`
	City         string    `gorm:"size:50;not null" json:"city" validate:"required" example:"Bangalore"`
	Zip          string    `gorm:"size:6;not null" json:"zip" validate:"required,alphanum,min=5,max=6" example:"560001"`
	Occupation   string    `gorm:"size:20;not null" json:"occupation" validate:"required,oneof=Student Engineer Doctor Other" example:"Engineer"`
	Income       *float64  `json:"income" validate:"omitempty,gte=0" example:"55000"`
	Signature    string    `gorm:"type:text;not null" json:"signature" validate:"required"`
	CreatedAt    time.Time `gorm:"index;not null" json:"createdAt" example:"2024-01-01T00:00:00Z"`
}

func (r *Registration) TableName() string {
	return "registrations"
}

// BeforeCreate normalizes the record the way the schema declares (trimmed name,
// trimmed lower-cased email) and rejects it when any schema rule fails. The age
// rule is judged as of the statement's reference time, falling back to createdAt.
func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	now, ok := ReferenceTime(tx.Statement.Context)
	if !ok {
		now = r.CreatedAt
	}
	if now.IsZero() {
		now = time.Now()
	}
	return CheckSchema(r, now)
}
