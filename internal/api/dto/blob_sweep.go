package dto

const (
	// BlobStatePending 已上传但尚未落库确认
	BlobStatePending = "pending"
	// BlobStateRetired 记录已不再引用，等待从对象存储移除
	BlobStateRetired = "retired"
)

// BlobSweepEntry 清理哈希表中的一条登记
type BlobSweepEntry struct {
	State     string `json:"state"`
	CreatedAt int64  `json:"created_at"`
}
