package errs

var (
	SystemError        = ErrorCode{Code: 506001, Msg: "系统错误"}
	SessionNotFound    = ErrorCode{Code: 506002, Msg: "投票会话不存在"}
	NoActiveDiscussion = ErrorCode{Code: 506003, Msg: "项目没有活跃讨论"}
	VotingInProgress   = ErrorCode{Code: 506004, Msg: "已有进行中的投票"}
	DuplicateVote      = ErrorCode{Code: 506005, Msg: "已经投过票了"}
	InvalidState       = ErrorCode{Code: 506006, Msg: "当前状态不允许该操作"}
	NotProjectMember   = ErrorCode{Code: 506007, Msg: "不是项目成员"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
