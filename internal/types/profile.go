package types

import (
  "time"
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "gorm.io/gorm"
)

const (
  RoleClient     = "client"
  RoleContractor = "contractor"
)

type Profile struct {
  ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
  FirstName   string            `gorm:"not null;column:first_name" json:"first_name"`
  LastName    string            `gorm:"not null;column:last_name" json:"last_name"`
  Profession  string            `gorm:"column:profession" json:"profession"`
  Balance     decimal.Decimal   `gorm:"type:numeric(12,2);not null;default:0" json:"balance"`
  Role        string            `gorm:"not null;column:role" json:"role"`
  CreatedAt   time.Time         `gorm:"not null" json:"created_at"`
  UpdatedAt   time.Time         `gorm:"not null" json:"updated_at"`
}

func (Profile) TableName() string {
  return "profile"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
  if p.ID == uuid.Nil {
    p.ID = uuid.New()
  }
  return nil
}

func (p *Profile) FullName() string {
  return p.FirstName + " " + p.LastName
}
