package web

type ProjectIDReq struct {
	ProjectID int64 `json:"project_id"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type VoteReq struct {
	SessionID int64 `json:"session_id"`
	Agree     bool  `json:"agree"`
}

type ListReq struct {
	ProjectID int64 `json:"project_id"`
	Offset    int   `json:"offset"`
	Limit     int   `json:"limit"`
}

type Session struct {
	ID               int64  `json:"id"`
	ProjectID        int64  `json:"project_id"`
	DiscussionID     int64  `json:"discussion_id,omitempty"`
	Guideline        string `json:"guideline,omitempty"`
	Status           string `json:"status"`
	PreviousVotingID int64  `json:"previous_voting_id,omitempty"`
	StartedAt        int64  `json:"started_at,omitempty"`
	EndedAt          int64  `json:"ended_at,omitempty"`
}

type SessionList struct {
	Sessions []Session `json:"sessions"`
}

type StatusResp struct {
	Session      Session `json:"session"`
	Agree        int64   `json:"agree"`
	Disagree     int64   `json:"disagree"`
	Total        int64   `json:"total"`
	AgreePercent float64 `json:"agree_percent"`
	Ratified     bool    `json:"ratified"`
}

type EndResp struct {
	Agree                int64   `json:"agree"`
	Disagree             int64   `json:"disagree"`
	AgreePercent         float64 `json:"agree_percent"`
	Ratified             bool    `json:"ratified"`
	FollowUpDiscussionID int64   `json:"follow_up_discussion_id,omitempty"`
	FollowUpSessionID    int64   `json:"follow_up_session_id,omitempty"`
}
