package types

import (
  "github.com/google/uuid"
  "github.com/shopspring/decimal"
)

// ProfessionTotal is one row of the best-profession aggregate: the summed
// price of paid jobs delivered by contractors of a profession.
type ProfessionTotal struct {
  Profession  string           `json:"profession"`
  Total       decimal.Decimal  `json:"total"`
}

// ClientTotal is one row of the best-clients aggregate.
type ClientTotal struct {
  ID        uuid.UUID        `json:"id"`
  FullName  string           `json:"fullName"`
  Paid      decimal.Decimal  `json:"paid"`
}
