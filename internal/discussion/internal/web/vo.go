package web

type StartReq struct {
	ProjectID int64  `json:"project_id"`
	Title     string `json:"title"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ProjectIDReq struct {
	ProjectID int64 `json:"project_id"`
}

type ListReq struct {
	ProjectID int64 `json:"project_id"`
	Offset    int   `json:"offset"`
	Limit     int   `json:"limit"`
}

type Discussion struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	CreatedBy int64  `json:"created_by"`
	Ctime     int64  `json:"ctime"`
	Utime     int64  `json:"utime"`
}

type DiscussionList struct {
	Discussions []Discussion `json:"discussions"`
}

type CloseResp struct {
	Status string `json:"status"`
}

type AddCommentReq struct {
	DiscussionID int64  `json:"discussion_id"`
	Content      string `json:"content"`
	TempID       string `json:"temp_id,omitempty"`
}

type UpdateCommentReq struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

type SyncCommentsReq struct {
	DiscussionID int64            `json:"discussion_id"`
	Comments     []OfflineComment `json:"comments"`
}

type OfflineComment struct {
	Content string `json:"content"`
	TempID  string `json:"temp_id"`
}

type SyncCommentsResp struct {
	Synced int `json:"synced"`
}

type CommentsReq struct {
	DiscussionID int64 `json:"discussion_id"`
	Offset       int   `json:"offset"`
	Limit        int   `json:"limit"`
}

type Comment struct {
	ID           int64  `json:"id"`
	DiscussionID int64  `json:"discussion_id"`
	UID          int64  `json:"uid"`
	Content      string `json:"content"`
	TempID       string `json:"temp_id,omitempty"`
	IsSynced     bool   `json:"is_synced"`
	Ctime        int64  `json:"ctime"`
}

type CommentList struct {
	Comments []Comment `json:"comments"`
	Total    int64     `json:"total"`
}
