package errs

var (
	SystemError        = ErrorCode{Code: 501001, Msg: "系统错误"}
	UserDuplicated     = ErrorCode{Code: 501002, Msg: "邮箱或用户名已被占用"}
	InvalidCredentials = ErrorCode{Code: 501003, Msg: "邮箱或密码不对"}
	WelcomeMailFailed  = ErrorCode{Code: 501004, Msg: "账号已创建，开户邮件发送失败"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
