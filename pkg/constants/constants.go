package constants

const (
	ACCOUNT_FILE_NAME          = "users.json" // 账号映射文件名
	CONTACT_FILE_SUFFIX        = ".json"      // 用户联系人文件后缀
	DATA_DIR_PERM              = 0o755        // 数据目录权限
	DATA_FILE_PERM             = 0o644        // 数据文件权限
	JSON_INDENT                = "    "       // 持久化文件缩进
	ACCESS_TOKEN_EXPIRY_MINUTE = 60           // Access Token 默认有效期（分钟）
	CONTEXT_USER_KEY           = "username"   // gin.Context 中保存当前用户名的 key
)
