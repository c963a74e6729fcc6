package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/labelhub/labelhub/internal/project/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.ProjectNotFound.Code,
		Msg:  errs.ProjectNotFound.Msg,
	}
	invalidTypeResult = ginx.Result{
		Code: errs.InvalidType.Code,
		Msg:  errs.InvalidType.Msg,
	}
	duplicateMemberResult = ginx.Result{
		Code: errs.MemberDuplicated.Code,
		Msg:  errs.MemberDuplicated.Msg,
	}
	invalidRoleResult = ginx.Result{
		Code: errs.InvalidRole.Code,
		Msg:  errs.InvalidRole.Msg,
	}
	lockedResult = ginx.Result{
		Code: errs.ProjectLocked.Code,
		Msg:  errs.ProjectLocked.Msg,
	}
	notLockedResult = ginx.Result{
		Code: errs.ProjectNotLocked.Code,
		Msg:  errs.ProjectNotLocked.Msg,
	}
	permissionDeniedResult = ginx.Result{
		Code: errs.PermissionDenied.Code,
		Msg:  errs.PermissionDenied.Msg,
	}
)
