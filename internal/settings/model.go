package settings

import "time"

// SettingModel is the GORM model for the settings table.
type SettingModel struct {
	Name      string `gorm:"primaryKey;size:128"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SettingModel) TableName() string {
	return "settings"
}
