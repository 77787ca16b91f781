package employee

import "time"

type Employee struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Age        int       `gorm:"not null"`
	Salary     float64   `gorm:"type:decimal(10,2);not null"`
	Department string    `gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}
