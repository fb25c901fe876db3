package constant

const (
	// BoardDetailCacheKeyPrefix 是看板详情缓存的 Key 前缀。
	// 示例 Key: "board_detail:5b1f0c1e-..."
	// Redis 类型: String，值为 vo.BoardDetailVO 的 JSON
	BoardDetailCacheKeyPrefix = "board_detail:"
)
