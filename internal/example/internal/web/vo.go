package web

type CreateReq struct {
	ProjectID int64          `json:"project_id"`
	Text      string         `json:"text"`
	Meta      map[string]any `json:"meta,omitempty"`
	Filename  string         `json:"filename,omitempty"`
}

type BatchCreateReq struct {
	ProjectID int64       `json:"project_id"`
	Examples  []CreateReq `json:"examples"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	ProjectID int64 `json:"project_id"`
	Offset    int   `json:"offset"`
	Limit     int   `json:"limit"`
}

type Example struct {
	ID        int64          `json:"id"`
	UUID      string         `json:"uuid"`
	ProjectID int64          `json:"project_id"`
	Text      string         `json:"text"`
	Meta      map[string]any `json:"meta,omitempty"`
	Filename  string         `json:"filename,omitempty"`
	Ctime     int64          `json:"ctime"`
	Utime     int64          `json:"utime"`
}

type ExampleList struct {
	Examples []Example `json:"examples"`
	Total    int64     `json:"total"`
}

type ToggleResp struct {
	Confirmed bool `json:"confirmed"`
}

type State struct {
	ID          int64 `json:"id"`
	ExampleID   int64 `json:"example_id"`
	UID         int64 `json:"uid"`
	ConfirmedAt int64 `json:"confirmed_at"`
}

type StateList struct {
	States []State `json:"states"`
}

type DisagreementListReq struct {
	ProjectID      int64 `json:"project_id"`
	UnresolvedOnly bool  `json:"unresolved_only"`
	Offset         int   `json:"offset"`
	Limit          int   `json:"limit"`
}

type Disagreement struct {
	ID        int64   `json:"id"`
	ExampleID int64   `json:"example_id"`
	ProjectID int64   `json:"project_id"`
	Users     []int64 `json:"users"`
	Resolved  bool    `json:"resolved"`
	Ctime     int64   `json:"ctime"`
}

type DisagreementList struct {
	Disagreements []Disagreement `json:"disagreements"`
	Total         int64          `json:"total"`
}

type DetectResp struct {
	Flagged      bool         `json:"flagged"`
	Disagreement Disagreement `json:"disagreement,omitempty"`
}
