package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
)

const (
  ContractStatusNew        = "new"
  ContractStatusInProgress = "in_progress"
  ContractStatusTerminated = "terminated"
)

type Contract struct {
  ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  ClientID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"client_id"`
  Client        *Profile        `gorm:"foreignKey:ClientID;references:ID" json:"client,omitempty"`
  ContractorID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"contractor_id"`
  Contractor    *Profile        `gorm:"foreignKey:ContractorID;references:ID" json:"contractor,omitempty"`
  Terms         string          `gorm:"column:terms" json:"terms"`
  Status        string          `gorm:"not null;default:'new';column:status" json:"status"`
  CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (Contract) TableName() string {
  return "contract"
}

func (c *Contract) BeforeCreate(tx *gorm.DB) error {
  if c.ID == uuid.Nil {
    c.ID = uuid.New()
  }
  return nil
}
