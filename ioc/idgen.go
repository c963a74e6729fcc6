package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/labelhub/labelhub/internal/pkg/idgen"
)

func InitIDGenerator() idgen.Generator {
	type Config struct {
		Node int64 `yaml:"node"`
	}
	var cfg Config
	err := econf.UnmarshalKey("snowflake", &cfg)
	if err != nil {
		panic(err)
	}
	gen, err := idgen.NewSnowflakeGenerator(cfg.Node)
	if err != nil {
		panic(err)
	}
	return gen
}
