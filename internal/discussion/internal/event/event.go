package event

const CommentTopic = "discussion_comment_events"

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// CommentEvent 评论变更广播给在线成员，Action 区分增改删
type CommentEvent struct {
	Action       string `json:"action"`
	DiscussionID int64  `json:"discussion_id"`
	ProjectID    int64  `json:"project_id"`
	CommentID    int64  `json:"comment_id"`
	UID          int64  `json:"uid"`
	Content      string `json:"content"`
	Ctime        int64  `json:"ctime"`
}
