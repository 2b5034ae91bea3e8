package jsonfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"kama_contact_book/pkg/constants"
	"kama_contact_book/pkg/errorx"

	"go.uber.org/zap"
)

// errMalformed 文件存在但内容无法解析
var errMalformed = errors.New("malformed storage file")

// wrapIOError 包装文件读写错误为 CodeStorageError
func wrapIOError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errorx.Wrap(err, errorx.CodeStorageError, msg)
}

func wrapIOErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errorx.Wrapf(err, errorx.CodeStorageError, format, args...)
}

// readJSONFile 读取并解析 JSON 文件
// 返回 fs.ErrNotExist / errMalformed（均可用 errors.Is 判断）或包装后的 I/O 错误
func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return wrapIOErrorf(err, "读取文件 %s 失败", path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Join(errMalformed, err)
	}
	return nil
}

// recoverable 判断读取错误是否按空数据处理
// 文件不存在静默返回；内容损坏记录告警后返回，保证用户不会被一个坏文件卡住
func recoverable(path string, err error) bool {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return true
	case errors.Is(err, errMalformed):
		zap.L().Warn("malformed storage file, treated as empty",
			zap.String("path", path),
			zap.Error(err),
		)
		return true
	}
	return false
}

// writeJSONFile 将 v 格式化后整体写入 path
// 先写同目录临时文件再 rename，避免写到一半的文件在下次加载时被当作损坏数据丢弃
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", constants.JSON_INDENT)
	if err != nil {
		return wrapIOErrorf(err, "序列化 %s 失败", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DATA_DIR_PERM); err != nil {
		return wrapIOErrorf(err, "创建目录 %s 失败", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return wrapIOErrorf(err, "创建临时文件失败 dir=%s", dir)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // rename 成功后为空操作

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return wrapIOErrorf(err, "写入文件 %s 失败", path)
	}
	if err := tmp.Close(); err != nil {
		return wrapIOErrorf(err, "写入文件 %s 失败", path)
	}
	if err := os.Chmod(tmpName, constants.DATA_FILE_PERM); err != nil {
		return wrapIOErrorf(err, "设置文件权限 %s 失败", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return wrapIOError(err, "替换数据文件失败")
	}
	return nil
}
