package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/labelhub/labelhub/internal/discussion/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	activeExistsResult = ginx.Result{
		Code: errs.ActiveDiscussionExists.Code,
		Msg:  errs.ActiveDiscussionExists.Msg,
	}
	noActiveResult = ginx.Result{
		Code: errs.NoActiveDiscussion.Code,
		Msg:  errs.NoActiveDiscussion.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.DiscussionNotFound.Code,
		Msg:  errs.DiscussionNotFound.Msg,
	}
	closedResult = ginx.Result{
		Code: errs.DiscussionClosed.Code,
		Msg:  errs.DiscussionClosed.Msg,
	}
	notMemberResult = ginx.Result{
		Code: errs.NotProjectMember.Code,
		Msg:  errs.NotProjectMember.Msg,
	}
	noPendingClosureResult = ginx.Result{
		Code: errs.NoPendingClosure.Code,
		Msg:  errs.NoPendingClosure.Msg,
	}
	commentNotFoundResult = ginx.Result{
		Code: errs.CommentNotFound.Code,
		Msg:  errs.CommentNotFound.Msg,
	}
	notAuthorResult = ginx.Result{
		Code: errs.NotCommentAuthor.Code,
		Msg:  errs.NotCommentAuthor.Msg,
	}
)
