package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/labelhub/labelhub/internal/example/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.ExampleNotFound.Code,
		Msg:  errs.ExampleNotFound.Msg,
	}
	lockedResult = ginx.Result{
		Code: errs.ProjectLocked.Code,
		Msg:  errs.ProjectLocked.Msg,
	}
)
