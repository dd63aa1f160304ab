// internals/features/activities/activity_type/model/activity_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipe/kategori activity (mis. "olahraga", "bakti sosial"). Nama unik;
// activity mereferensikan tabel ini lewat activity_type_id.
type ActivityTypeModel struct {
	ActivityTypeID          uuid.UUID `gorm:"column:activity_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"activity_type_id"`
	ActivityTypeName        string    `gorm:"column:activity_type_name;type:varchar(100);not null;unique" json:"activity_type_name"`
	ActivityTypeDescription *string   `gorm:"column:activity_type_description;type:text" json:"activity_type_description,omitempty"`

	ActivityTypeCreatedAt time.Time      `gorm:"column:activity_type_created_at;not null;autoCreateTime" json:"activity_type_created_at"`
	ActivityTypeUpdatedAt time.Time      `gorm:"column:activity_type_updated_at;not null;autoUpdateTime" json:"activity_type_updated_at"`
	ActivityTypeDeletedAt gorm.DeletedAt `gorm:"column:activity_type_deleted_at;index" json:"activity_type_deleted_at,omitempty"`
}

func (ActivityTypeModel) TableName() string { return "activity_types" }
