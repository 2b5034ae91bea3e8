package errorx

import (
	"errors"
	"fmt"
)

// CodeError 带业务错误码的自定义错误
// 实现了 error 接口，支持 %w 包装底层错误，且能被 errors.Is/errors.As 识别
type CodeError struct {
	Code  int    // 业务错误码
	Msg   string // 错误消息
	cause error  // 被包装的底层错误
}

// Error 实现 Go 标准 error 接口
// 当存在底层错误时，返回格式为 "消息: 底层错误"；否则仅返回消息
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap 实现 errors.Unwrap 接口，支持 errors.Is/errors.As 向下追溯
func (e *CodeError) Unwrap() error {
	return e.cause
}

// Is 按错误码比较，使预定义实例可以直接用于 errors.Is
func (e *CodeError) Is(target error) bool {
	var t *CodeError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New 创建一个新的 CodeError
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf 创建一个带格式化消息的 CodeError
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap 包装底层错误，添加业务错误码和消息
// 用法: errorx.Wrap(err, CodeStorageError, "写入联系人文件失败")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf 包装底层错误，支持格式化消息
// 用法: errorx.Wrapf(err, CodeStorageError, "读取文件 %s 失败", path)
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode 从错误中提取业务错误码，如果不是 CodeError 则返回默认码
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy // 默认返回服务繁忙
}

// HasCode 判断错误链中是否存在指定错误码的 CodeError
func HasCode(err error, code int) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == code
}

// 业务状态码常量定义
const (
	CodeSuccess              = 1000 // 成功
	CodeInvalidParam         = 1001 // 请求参数错误（InvalidInput）
	CodeUserExist            = 1002 // 用户已存在（DuplicateAccount）
	CodeInvalidPassword      = 1004 // 用户名或密码错误（InvalidCredentials）
	CodeServerBusy           = 1005 // 服务繁忙
	CodeUnauthorized         = 1006 // 未授权/认证失败
	CodeNotFound             = 1008 // 资源不存在
	CodeStorageError         = 1010 // 持久化文件读写错误（致命）
	CodeRequiredFieldMissing = 1012 // 必填字段缺失
	CodeDuplicatePhone       = 1013 // 电话号码已存在
	CodeNothingSelected      = 1014 // 未选择任何联系人
	CodeWrongPassphrase      = 1015 // 应用解锁口令错误
	CodeAppLocked            = 1016 // 当前会话状态不允许该操作
)

// 预定义常用错误实例
// 这些实例既可直接返回，也可用于 errors.Is 比较
var (
	ErrInvalidParam         = New(CodeInvalidParam, "请求参数错误")
	ErrServerBusy           = New(CodeServerBusy, "服务繁忙")
	ErrRequiredFieldMissing = New(CodeRequiredFieldMissing, "姓名和电话为必填项")
	ErrDuplicatePhone       = New(CodeDuplicatePhone, "该电话号码的联系人已存在")
	ErrDuplicateAccount     = New(CodeUserExist, "用户名已存在")
	ErrNotFound             = New(CodeNotFound, "联系人不存在")
	ErrNothingSelected      = New(CodeNothingSelected, "请先选择联系人")
	ErrInvalidCredentials   = New(CodeInvalidPassword, "用户名或密码错误")
	ErrWrongPassphrase      = New(CodeWrongPassphrase, "应用口令错误")
)

// IsNotFound 检查错误是否为"未找到"类型
func IsNotFound(err error) bool {
	return HasCode(err, CodeNotFound)
}
