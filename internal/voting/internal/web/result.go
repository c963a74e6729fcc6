package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/labelhub/labelhub/internal/voting/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.SessionNotFound.Code,
		Msg:  errs.SessionNotFound.Msg,
	}
	noActiveDiscussionResult = ginx.Result{
		Code: errs.NoActiveDiscussion.Code,
		Msg:  errs.NoActiveDiscussion.Msg,
	}
	votingInProgressResult = ginx.Result{
		Code: errs.VotingInProgress.Code,
		Msg:  errs.VotingInProgress.Msg,
	}
	duplicateVoteResult = ginx.Result{
		Code: errs.DuplicateVote.Code,
		Msg:  errs.DuplicateVote.Msg,
	}
	invalidStateResult = ginx.Result{
		Code: errs.InvalidState.Code,
		Msg:  errs.InvalidState.Msg,
	}
	notMemberResult = ginx.Result{
		Code: errs.NotProjectMember.Code,
		Msg:  errs.NotProjectMember.Msg,
	}
)
