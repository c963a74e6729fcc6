package errs

var (
	SystemError           = ErrorCode{Code: 504001, Msg: "系统错误"}
	PerspectiveDuplicated = ErrorCode{Code: 504002, Msg: "视角名称已存在"}
	AttributeInvalid      = ErrorCode{Code: 504003, Msg: "属性定义不合法"}
	ValueInvalid          = ErrorCode{Code: 504004, Msg: "属性取值不合法"}
	DescriptionDuplicated = ErrorCode{Code: 504005, Msg: "已经描述过该属性"}
	PerspectiveNotFound   = ErrorCode{Code: 504006, Msg: "视角不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
