package errs

var (
	SystemError     = ErrorCode{Code: 503001, Msg: "系统错误"}
	ExampleNotFound = ErrorCode{Code: 503002, Msg: "样本不存在"}
	ProjectLocked   = ErrorCode{Code: 503003, Msg: "项目已锁定，标注被冻结"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
