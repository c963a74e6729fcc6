package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/labelhub/labelhub/internal/email"
	"github.com/labelhub/labelhub/internal/email/aliyun"
)

func InitEmailService() email.Service {
	type Config struct {
		AccessKeyID     string `yaml:"accessKeyID"`
		AccessKeySecret string `yaml:"accessKeySecret"`
		AccountName     string `yaml:"accountName"`
	}
	var cfg Config
	err := econf.UnmarshalKey("email.aliyun", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.AccessKeyID == "" {
		// 本地没配凭证就只打日志，注册流程照样能走通
		return email.NewConsoleService()
	}
	cli, err := aliyun.NewDirectMailClient(cfg.AccessKeyID, cfg.AccessKeySecret, cfg.AccountName)
	if err != nil {
		panic(err)
	}
	return email.NewFailoverService(cli, email.NewConsoleService())
}
