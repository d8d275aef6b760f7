package dto

// PhotoDTO 画廊条目，含对象存储公开 URL
type PhotoDTO struct {
	ID           uint64   `json:"id"`
	StoragePath  string   `json:"storage_path"`
	PublicURL    string   `json:"public_url"`
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	Title        *string  `json:"title"`
	LocationNote *string  `json:"location_note"`
	Tags         []string `json:"tags"`
	MediaType    string   `json:"media_type"`
	TakenAt      string   `json:"taken_at"`
	CreatedAt    string   `json:"created_at"`
	SortOrder    int      `json:"sort_order"`
	LikesCount   int      `json:"likes_count"`
}

// PhotoPageDTO 分页返回
type PhotoPageDTO struct {
	Items   []*PhotoDTO `json:"items"`
	Page    int         `json:"page"`
	HasMore bool        `json:"has_more"`
}

type PhotoListQueryDTO struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=12" binding:"omitempty,min=1,max=48"`
}

// PhotoFormDTO 上传/编辑共用的表单字段，文件部分单独处理
type PhotoFormDTO struct {
	Title        string `form:"title" binding:"omitempty,max=255"`
	LocationNote string `form:"location_note" binding:"omitempty,max=255"`
	Tags         string `form:"tags"`
	MediaType    string `form:"media_type" binding:"omitempty,oneof=image video"`
	TakenAt      string `form:"taken_at"`
	Width        int    `form:"width" binding:"omitempty,min=0"`
	Height       int    `form:"height" binding:"omitempty,min=0"`
}

// ReorderDTO 整表排序重写
type ReorderDTO struct {
	IDs []uint64 `json:"ids" binding:"required,min=1"`
}

// LikeResultDTO 点赞后的最新计数
type LikeResultDTO struct {
	ID         uint64 `json:"id"`
	LikesCount int    `json:"likes_count"`
}
