package errs

var (
	SystemError      = ErrorCode{Code: 507001, Msg: "系统错误"}
	NoPerspective    = ErrorCode{Code: 507002, Msg: "项目没有绑定视角"}
	InvalidThreshold = ErrorCode{Code: 507003, Msg: "阈值必须在 0 到 1 之间"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
