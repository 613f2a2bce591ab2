package models

import "time"

// Customer is a registered loyalty-program member. Points is kept equal to
// the sum of the customer's points records at all times.
type Customer struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"not null" json:"name"`
	Phone         string     `gorm:"uniqueIndex" json:"phone"`
	Email         string     `json:"email"`
	MemberLevelID uint       `gorm:"index" json:"member_level_id"`
	Points        int        `gorm:"not null;default:0" json:"points"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	LastVisitAt   *time.Time `json:"last_visit_at"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// MemberLevel defines a loyalty tier and its discount
type MemberLevel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	MinPoints int       `gorm:"not null;default:0" json:"min_points"`
	Discount  float64   `gorm:"not null;default:1" json:"discount"` // 1 = no discount
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the MemberLevel model
func (MemberLevel) TableName() string {
	return "member_levels"
}
