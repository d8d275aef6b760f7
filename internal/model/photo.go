package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// TagList tags 列以 JSON 数组形式存储
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	return json.Marshal(t)
}

func (t *TagList) Scan(value interface{}) error {
	if value == nil {
		*t = TagList{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported tags column type: %T", value)
	}
	if len(b) == 0 {
		*t = TagList{}
		return nil
	}
	return json.Unmarshal(b, t)
}

type Photo struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	StoragePath  string    `gorm:"type:varchar(512);not null;uniqueIndex" json:"storage_path"`
	Width        int       `gorm:"not null;default:0" json:"width"`
	Height       int       `gorm:"not null;default:0" json:"height"`
	Title        *string   `gorm:"type:varchar(255)" json:"title"`
	LocationNote *string   `gorm:"type:varchar(255)" json:"location_note"`
	Tags         TagList   `gorm:"type:json" json:"tags"`
	MediaType    string    `gorm:"type:varchar(16);not null;default:'image'" json:"media_type"`
	TakenAt      time.Time `json:"taken_at"`
	CreatedAt    time.Time `gorm:"index:idx_sort,priority:2,sort:desc" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	SortOrder    int       `gorm:"not null;default:0;index:idx_sort,priority:1" json:"sort_order"`
	LikesCount   int       `gorm:"not null;default:0" json:"likes_count"`
}

func (Photo) TableName() string {
	return "photos"
}
