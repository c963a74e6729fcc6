package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/labelhub/labelhub/internal/perspective/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	duplicatedResult = ginx.Result{
		Code: errs.PerspectiveDuplicated.Code,
		Msg:  errs.PerspectiveDuplicated.Msg,
	}
	invalidAttributeResult = ginx.Result{
		Code: errs.AttributeInvalid.Code,
		Msg:  errs.AttributeInvalid.Msg,
	}
	invalidValueResult = ginx.Result{
		Code: errs.ValueInvalid.Code,
		Msg:  errs.ValueInvalid.Msg,
	}
	duplicatedDescriptionResult = ginx.Result{
		Code: errs.DescriptionDuplicated.Code,
		Msg:  errs.DescriptionDuplicated.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.PerspectiveNotFound.Code,
		Msg:  errs.PerspectiveNotFound.Msg,
	}
)
