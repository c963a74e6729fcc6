package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/labelhub/labelhub/internal/reporting/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	noPerspectiveResult = ginx.Result{
		Code: errs.NoPerspective.Code,
		Msg:  errs.NoPerspective.Msg,
	}
	invalidThresholdResult = ginx.Result{
		Code: errs.InvalidThreshold.Code,
		Msg:  errs.InvalidThreshold.Msg,
	}
)
