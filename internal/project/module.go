package project

import (
	"github.com/labelhub/labelhub/internal/project/internal/domain"
	"github.com/labelhub/labelhub/internal/project/internal/service"
	"github.com/labelhub/labelhub/internal/project/internal/web"
)

type Service = service.Service
type VotingLifecycle = service.VotingLifecycle
type Handler = web.Handler
type Project = domain.Project
type Member = domain.Member
type Tag = domain.Tag
type Role = domain.Role

const (
	RoleAdmin     = domain.RoleAdmin
	RoleAnnotator = domain.RoleAnnotator
	RoleApprover  = domain.RoleApprover
)

type Module struct {
	Svc Service
	Hdl *Handler
}
