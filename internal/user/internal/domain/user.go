package domain

type User struct {
	ID       int64
	Email    string
	Username string
	// Password bcrypt 散列之后的密文
	Password string
	Nickname string
	Avatar   string
	Ctime    int64
	Utime    int64
}
