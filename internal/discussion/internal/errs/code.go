package errs

var (
	SystemError            = ErrorCode{Code: 505001, Msg: "系统错误"}
	ActiveDiscussionExists = ErrorCode{Code: 505002, Msg: "项目已有活跃讨论"}
	NoActiveDiscussion     = ErrorCode{Code: 505003, Msg: "项目没有活跃讨论"}
	DiscussionNotFound     = ErrorCode{Code: 505004, Msg: "讨论不存在"}
	DiscussionClosed       = ErrorCode{Code: 505005, Msg: "讨论已经关闭"}
	NotProjectMember       = ErrorCode{Code: 505006, Msg: "不是项目成员"}
	NoPendingClosure       = ErrorCode{Code: 505007, Msg: "讨论不在待关闭状态"}
	CommentNotFound        = ErrorCode{Code: 505008, Msg: "评论不存在"}
	NotCommentAuthor       = ErrorCode{Code: 505009, Msg: "只能操作自己的评论"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
