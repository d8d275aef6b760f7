package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrPhotoNotFound      = errors.New("照片不存在")
	ErrFileRequired       = errors.New("请选择要上传的文件")
	ErrFileNotSupported   = errors.New("不支持的文件类型")
	ErrCredentialMismatch = errors.New("邮箱或密码错误")
	ErrStorageUpload      = errors.New("文件上传失败，请稍后重试")
	ErrStorageDelete      = errors.New("文件删除失败，请稍后重试")
	ErrReorderMismatch    = errors.New("排序列表与当前照片不一致")
	UnauthorizedError     = errors.New("权限不足")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrPhotoNotFound:      NotFound,
	ErrFileRequired:       BadRequest,
	ErrFileNotSupported:   BadRequest,
	ErrCredentialMismatch: Unauthorized,
	ErrStorageUpload:      InternalServerError,
	ErrStorageDelete:      InternalServerError,
	ErrReorderMismatch:    BadRequest,
	UnauthorizedError:     Unauthorized,
	UnExpectedError:       InternalServerError,
}
