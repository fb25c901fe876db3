package events

import "time"

// BoardChangedEvent 看板创建或更新后发出。
// 消费方收到后应回源读取，事件本身不携带角色字段。
type BoardChangedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	BoardID   string    `json:"board_id"`
}

// BoardDeletedEvent 看板（连同其帖子）被删除后发出
type BoardDeletedEvent struct {
	EventID      string    `json:"event_id"`
	Timestamp    time.Time `json:"timestamp"`
	BoardID      string    `json:"board_id"`
	DeletedPosts int64     `json:"deleted_posts"`
}
