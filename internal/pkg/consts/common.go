package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

const (
	// DefaultPageSize 公开画廊单页条数
	DefaultPageSize = 12
	MaxPageSize     = 48
)

const (
	// SessionCookieName 管理端会话 Cookie
	SessionCookieName = "gallery_session"
	RoleAdmin         = "ADMIN"
)

const (
	// TakenAtLayout 表单中的展示时间格式
	TakenAtLayout = "2006-01-02T15:04"
)
