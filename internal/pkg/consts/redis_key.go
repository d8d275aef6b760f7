package consts

const (
	// SessionBlacklistKey 已注销会话签名黑名单前缀
	SessionBlacklistKey = "session:blacklist:"
	// BlobSweepKey 待清理/待确认对象的哈希表
	BlobSweepKey = "blob:sweep"
)
