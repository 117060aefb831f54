package types

import (
  "time"
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "gorm.io/gorm"
)

type Job struct {
  ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
  ContractID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"contract_id"`
  Contract     *Contract        `gorm:"foreignKey:ContractID;references:ID" json:"contract,omitempty"`
  Description  string           `gorm:"column:description" json:"description"`
  Price        decimal.Decimal  `gorm:"type:numeric(12,2);not null" json:"price"`
  Paid         bool             `gorm:"not null;default:false" json:"paid"`
  PaymentDate  *time.Time       `gorm:"column:payment_date" json:"payment_date,omitempty"`
  CreatedAt    time.Time        `gorm:"not null" json:"created_at"`
  UpdatedAt    time.Time        `gorm:"not null" json:"updated_at"`
}

func (Job) TableName() string {
  return "job"
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
  if j.ID == uuid.Nil {
    j.ID = uuid.New()
  }
  return nil
}
