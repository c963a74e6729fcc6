package errs

var (
	SystemError      = ErrorCode{Code: 502001, Msg: "系统错误"}
	ProjectNotFound  = ErrorCode{Code: 502002, Msg: "项目不存在"}
	InvalidType      = ErrorCode{Code: 502003, Msg: "项目类型不合法"}
	MemberDuplicated = ErrorCode{Code: 502004, Msg: "用户已经是项目成员"}
	InvalidRole      = ErrorCode{Code: 502005, Msg: "角色不合法"}
	ProjectLocked    = ErrorCode{Code: 502006, Msg: "项目已锁定"}
	ProjectNotLocked = ErrorCode{Code: 502007, Msg: "项目尚未锁定"}
	PermissionDenied = ErrorCode{Code: 502008, Msg: "没有权限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
