package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/labelhub/labelhub/internal/reporting/internal/domain"
	"github.com/labelhub/labelhub/internal/reporting/internal/service"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/reporting")
	g.POST("/disagreement-stats", ginx.B[StatsReq](h.DisagreementStats))
	g.POST("/auto-analyze", ginx.B[AutoAnalyzeReq](h.AutoAnalyze))
	g.POST("/compare-members", ginx.B[CompareMembersReq](h.CompareMembers))
	g.POST("/label-distributions", ginx.B[LabelDistributionsReq](h.LabelDistributions))
	g.POST("/attribute-descriptions", ginx.B[AttributeDescriptionsReq](h.AttributeDescriptions))
}

func (h *Handler) DisagreementStats(ctx *ginx.Context, req StatsReq) (ginx.Result, error) {
	stats, err := h.svc.DisagreementStats(ctx, req.ProjectID, req.MemberIDs, req.AttrNames)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: StatsResp{
			TotalExamples:          stats.TotalExamples,
			ConflictCount:          stats.ConflictCount,
			ConflictPercentage:     stats.ConflictPercentage,
			AttributeDistributions: newDistributions(stats.AttributeDistributions),
		},
	}, nil
}

func (h *Handler) AutoAnalyze(ctx *ginx.Context, req AutoAnalyzeReq) (ginx.Result, error) {
	flagged, err := h.svc.AutoAnalyze(ctx, req.ProjectID, req.Threshold)
	if errors.Is(err, service.ErrInvalidThreshold) {
		return invalidThresholdResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AutoAnalyzeResp{
			Flagged: slice.Map(flagged, func(idx int, src domain.FlaggedExample) FlaggedExample {
				return FlaggedExample{
					ExampleID:        src.ExampleID,
					TotalPairs:       src.TotalPairs,
					DisagreeingPairs: src.DisagreeingPairs,
					Ratio:            src.Ratio,
					Pairs: slice.Map(src.Pairs, func(idx int, p domain.PairComparison) Pair {
						return Pair{
							FirstUID:    p.FirstUID,
							SecondUID:   p.SecondUID,
							Equal:       p.Comparison.Equal,
							Differences: p.Comparison.Differences,
						}
					}),
				}
			}),
		},
	}, nil
}

func (h *Handler) CompareMembers(ctx *ginx.Context, req CompareMembersReq) (ginx.Result, error) {
	comparisons, err := h.svc.CompareMembers(ctx, req.ProjectID, req.FirstUID, req.SecondUID, req.Search)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CompareMembersResp{
			Comparisons: slice.Map(comparisons, func(idx int, src domain.MemberComparison) MemberComparison {
				return MemberComparison{
					ExampleID:   src.ExampleID,
					Text:        src.Text,
					First:       src.First,
					Second:      src.Second,
					Equal:       src.Comparison.Equal,
					Differences: src.Comparison.Differences,
				}
			}),
		},
	}, nil
}

func (h *Handler) LabelDistributions(ctx *ginx.Context, req LabelDistributionsReq) (ginx.Result, error) {
	view := domain.View(req.View)
	if view == "" {
		view = domain.ViewAll
	}
	total, dists, err := h.svc.LabelDistributions(ctx, req.ProjectID, req.AttrNames, req.Values, view)
	if errors.Is(err, service.ErrNoPerspective) {
		return noPerspectiveResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: LabelDistributionsResp{
			TotalMembers: total,
			Examples: slice.Map(dists, func(idx int, src domain.LabelDistribution) LabelDistribution {
				return LabelDistribution{
					ExampleID:     src.ExampleID,
					Labels:        src.Labels,
					AgreementRate: src.AgreementRate,
					IsAgreement:   src.IsAgreement,
				}
			}),
		},
	}, nil
}

func (h *Handler) AttributeDescriptions(ctx *ginx.Context, req AttributeDescriptionsReq) (ginx.Result, error) {
	distributions, err := h.svc.AttributeDescriptions(ctx, req.ProjectID, req.MemberIDs, req.AttrNames)
	if errors.Is(err, service.ErrNoPerspective) {
		return noPerspectiveResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AttributeDescriptionsResp{
			Distributions: newDistributions(distributions),
		},
	}, nil
}

func newDistributions(src map[string][]domain.ValueShare) map[string][]ValueShare {
	if src == nil {
		return nil
	}
	res := make(map[string][]ValueShare, len(src))
	for name, shares := range src {
		res[name] = slice.Map(shares, func(idx int, s domain.ValueShare) ValueShare {
			return ValueShare{
				Value:      s.Value,
				Count:      s.Count,
				Percentage: s.Percentage,
			}
		})
	}
	return res
}
