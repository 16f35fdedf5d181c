package entities

import (
	"time"

	"github.com/google/uuid"
)

// Graduate represents a graduate registered in the career portal
type Graduate struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Career    *string   `gorm:"type:varchar(255)" json:"career,omitempty"`
	Phone     *string   `gorm:"type:varchar(30)" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for Graduate
func (Graduate) TableName() string {
	return "graduates"
}
