package company

import "time"

// Company groups employees and vehicles by tenant. Referenced by foreign key
// only; no admin surface manipulates it directly.
type Company struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:190;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Company) TableName() string { return "companies" }
