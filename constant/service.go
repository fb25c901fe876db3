package constant

const (
	ServiceName    = "board_service"
	ServiceVersion = "1.0.0"
)

// 角色字段完整性巡检的默认调度，可被 roleScanConfig.cronSpec 覆盖
const RoleScanCronSpec = "@every 1h"

// RoleScanDefaultBatchSize 巡检任务每批读取的看板数
const RoleScanDefaultBatchSize = 200

// COSObjectKeyPrefixBoardArchive 被删除看板的归档快照前缀。
// 完整格式: boards/archive/YYYYMMDD/{boardID}.json
const COSObjectKeyPrefixBoardArchive = "boards/archive/"
