package event

const ConfirmationTopic = "annotation_confirmation_events"

// ConfirmedEvent 成员确认或撤销确认一条样本之后广播
type ConfirmedEvent struct {
	ProjectID int64 `json:"project_id"`
	ExampleID int64 `json:"example_id"`
	UID       int64 `json:"uid"`
	Confirmed bool  `json:"confirmed"`
	// Flagged 这次确认是否触发了分歧记录
	Flagged bool  `json:"flagged"`
	Ctime   int64 `json:"ctime"`
}
