package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id"`
	Username           string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email              string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName           string    `gorm:"type:varchar(255);index;not null" json:"full_name"`
	Avatar             string    `gorm:"type:varchar(500);not null" json:"avatar"`
	AvatarPublicID     string    `gorm:"type:varchar(500)" json:"-"`
	CoverImage         string    `gorm:"type:varchar(500)" json:"cover_image"`
	CoverImagePublicID string    `gorm:"type:varchar(500)" json:"-"`
	Password           string    `gorm:"type:varchar(255);not null" json:"-"`
	RefreshToken       string    `gorm:"type:text" json:"-"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
