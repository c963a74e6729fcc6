package web

type CreateReq struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	Guideline     string `json:"guideline"`
	Collaborative bool   `json:"collaborative"`
	RandomOrder   bool   `json:"random_order"`
}

type UpdateReq struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Guideline     string `json:"guideline"`
	Collaborative bool   `json:"collaborative"`
	RandomOrder   bool   `json:"random_order"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type Project struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Type          string `json:"type"`
	Guideline     string `json:"guideline"`
	CreatedBy     int64  `json:"created_by"`
	Locked        bool   `json:"locked"`
	Collaborative bool   `json:"collaborative"`
	PerspectiveID int64  `json:"perspective_id"`
	RandomOrder   bool   `json:"random_order"`
	Ctime         int64  `json:"ctime"`
	Utime         int64  `json:"utime"`
}

type ProjectList struct {
	Projects []Project `json:"projects"`
}

type AssignPerspectiveReq struct {
	ProjectID     int64 `json:"project_id"`
	PerspectiveID int64 `json:"perspective_id"`
}

type AddMemberReq struct {
	ProjectID int64  `json:"project_id"`
	UID       int64  `json:"uid"`
	Role      string `json:"role"`
}

type RemoveMemberReq struct {
	ProjectID int64 `json:"project_id"`
	UID       int64 `json:"uid"`
}

type Member struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	UID       int64  `json:"uid"`
	Role      string `json:"role"`
	Ctime     int64  `json:"ctime"`
}

type MemberList struct {
	Members []Member `json:"members"`
}

type SaveTagReq struct {
	ProjectID int64  `json:"project_id"`
	Text      string `json:"text"`
}

type DeleteTagReq struct {
	ProjectID int64 `json:"project_id"`
	TagID     int64 `json:"tag_id"`
}

type Tag struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	Text      string `json:"text"`
}

type TagList struct {
	Tags []Tag `json:"tags"`
}
