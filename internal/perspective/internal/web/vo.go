package web

type CreateReq struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Attributes  []Attribute `json:"attributes"`
}

type Attribute struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

type Perspective struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedBy   int64       `json:"created_by"`
	Attributes  []Attribute `json:"attributes,omitempty"`
	Ctime       int64       `json:"ctime"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type PerspectiveList struct {
	Perspectives []Perspective `json:"perspectives"`
}

type AttributeList struct {
	Attributes []Attribute `json:"attributes"`
}

type DescribeReq struct {
	MemberID    int64  `json:"member_id"`
	AttributeID int64  `json:"attribute_id"`
	Value       string `json:"value"`
}

type DescriptionsReq struct {
	PerspectiveID int64    `json:"perspective_id"`
	MemberIDs     []int64  `json:"member_ids,omitempty"`
	Attributes    []string `json:"attributes,omitempty"`
}

type Description struct {
	ID            int64  `json:"id"`
	MemberID      int64  `json:"member_id"`
	AttributeID   int64  `json:"attribute_id"`
	AttributeName string `json:"attribute_name"`
	Value         string `json:"value"`
	Ctime         int64  `json:"ctime"`
}

type DescriptionList struct {
	Descriptions []Description `json:"descriptions"`
}

type DistinctValuesResp struct {
	Values map[string][]string `json:"values"`
}
