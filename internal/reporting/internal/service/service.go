package service

import (
	"context"
	"errors"
	"strings"

	"github.com/labelhub/labelhub/internal/annotation"
	"github.com/labelhub/labelhub/internal/example"
	"github.com/labelhub/labelhub/internal/perspective"
	"github.com/labelhub/labelhub/internal/project"
	"github.com/labelhub/labelhub/internal/reporting/internal/domain"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentExamples 限制报表聚合时并发抽取标注的协程数
const maxConcurrentExamples = 8

var (
	ErrNoPerspective    = errors.New("项目没有绑定视角")
	ErrInvalidThreshold = errors.New("阈值必须在 0 到 1 之间")
)

//go:generate mockgen -source=./service.go -package=reportingmocks -destination=../../mocks/reporting.mock.go Service
type Service interface {
	// DisagreementStats 项目级分歧统计。members 和 attrNames
	// 为空时统计全部成员、全部属性。
	DisagreementStats(ctx context.Context, projectID int64, memberIDs []int64, attrNames []string) (domain.DisagreementStats, error)
	// AutoAnalyze 两两比较所有标注对，分歧对占比过线的样本被标记。
	// threshold 传 0 用默认值
	AutoAnalyze(ctx context.Context, projectID int64, threshold float64) ([]domain.FlaggedExample, error)
	CompareMembers(ctx context.Context, projectID, firstUID, secondUID int64, search string) ([]domain.MemberComparison, error)
	// LabelDistributions 按成员属性取值分组看每条样本的标签一致率
	LabelDistributions(ctx context.Context, projectID int64, attrNames, values []string, view domain.View) (int64, []domain.LabelDistribution, error)
	AttributeDescriptions(ctx context.Context, projectID int64, memberIDs []int64, attrNames []string) (map[string][]domain.ValueShare, error)
}

type service struct {
	exampleSvc     example.Service
	projectSvc     project.Service
	perspectiveSvc perspective.Service
	extractor      *annotation.Extractor
}

func NewService(exampleSvc example.Service,
	projectSvc project.Service,
	perspectiveSvc perspective.Service,
	extractor *annotation.Extractor) Service {
	return &service{
		exampleSvc:     exampleSvc,
		projectSvc:     projectSvc,
		perspectiveSvc: perspectiveSvc,
		extractor:      extractor,
	}
}

func (svc *service) DisagreementStats(ctx context.Context, projectID int64,
	memberIDs []int64, attrNames []string) (domain.DisagreementStats, error) {
	ids, err := svc.exampleSvc.MultiAnnotatedExamples(ctx, projectID)
	if err != nil {
		return domain.DisagreementStats{}, err
	}
	stats := domain.DisagreementStats{
		TotalExamples: int64(len(ids)),
	}

	conflicts := make([]bool, len(ids))
	var eg errgroup.Group
	eg.SetLimit(maxConcurrentExamples)
	for i := range ids {
		i := i
		eg.Go(func() error {
			sets, err := svc.annotationSets(ctx, ids[i], memberIDs)
			if err != nil {
				return err
			}
			if len(sets) < 2 {
				return nil
			}
			conflicts[i] = !annotation.AllIdentical(sets)
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return domain.DisagreementStats{}, err
	}
	for _, c := range conflicts {
		if c {
			stats.ConflictCount++
		}
	}
	if stats.TotalExamples > 0 {
		stats.ConflictPercentage = domain.Round1(
			float64(stats.ConflictCount) / float64(stats.TotalExamples) * 100)
	}

	// 属性分布是可选维度，项目没绑定视角就不出这一块
	distributions, err := svc.AttributeDescriptions(ctx, projectID, memberIDs, attrNames)
	if err != nil && !errors.Is(err, ErrNoPerspective) {
		return domain.DisagreementStats{}, err
	}
	stats.AttributeDistributions = distributions
	return stats, nil
}

func (svc *service) AutoAnalyze(ctx context.Context, projectID int64, threshold float64) ([]domain.FlaggedExample, error) {
	if threshold == 0 {
		threshold = domain.DefaultThreshold
	}
	if threshold < 0 || threshold > 1 {
		return nil, ErrInvalidThreshold
	}
	ids, err := svc.exampleSvc.MultiAnnotatedExamples(ctx, projectID)
	if err != nil {
		return nil, err
	}

	flagged := make([]*domain.FlaggedExample, len(ids))
	var eg errgroup.Group
	eg.SetLimit(maxConcurrentExamples)
	for i := range ids {
		i := i
		eg.Go(func() error {
			fe, err := svc.analyzeExample(ctx, ids[i], threshold)
			if err != nil {
				return err
			}
			flagged[i] = fe
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	res := make([]domain.FlaggedExample, 0, len(flagged))
	for _, fe := range flagged {
		if fe != nil {
			res = append(res, *fe)
		}
	}
	return res, nil
}

// analyzeExample 比较样本上所有 C(n,2) 个标注对，占比没过线返回 nil
func (svc *service) analyzeExample(ctx context.Context, exampleID int64, threshold float64) (*domain.FlaggedExample, error) {
	uids, sets, err := svc.annotationsByUID(ctx, exampleID, nil)
	if err != nil {
		return nil, err
	}
	if len(uids) < 2 {
		return nil, nil
	}
	var disagreeing []domain.PairComparison
	totalPairs := 0
	for i := 0; i < len(uids); i++ {
		for j := i + 1; j < len(uids); j++ {
			totalPairs++
			cmp := annotation.Compare(sets[uids[i]], sets[uids[j]])
			if !cmp.Equal {
				disagreeing = append(disagreeing, domain.PairComparison{
					FirstUID:   uids[i],
					SecondUID:  uids[j],
					Comparison: cmp,
				})
			}
		}
	}
	ratio := domain.PairDisagreementRatio(len(disagreeing), totalPairs)
	if ratio < threshold {
		return nil, nil
	}
	return &domain.FlaggedExample{
		ExampleID:        exampleID,
		TotalPairs:       totalPairs,
		DisagreeingPairs: len(disagreeing),
		Ratio:            domain.Round1(ratio * 100),
		Pairs:            disagreeing,
	}, nil
}

func (svc *service) CompareMembers(ctx context.Context, projectID, firstUID, secondUID int64, search string) ([]domain.MemberComparison, error) {
	ids, err := svc.exampleSvc.MultiAnnotatedExamples(ctx, projectID)
	if err != nil {
		return nil, err
	}
	comparisons := make([]*domain.MemberComparison, len(ids))
	var eg errgroup.Group
	eg.SetLimit(maxConcurrentExamples)
	for i := range ids {
		i := i
		eg.Go(func() error {
			e, err := svc.exampleSvc.Detail(ctx, ids[i])
			if err != nil {
				return err
			}
			if search != "" && !strings.Contains(e.Text, search) {
				return nil
			}
			first := svc.extractor.ExtractSafe(ctx, e.Meta, e.ID, firstUID)
			second := svc.extractor.ExtractSafe(ctx, e.Meta, e.ID, secondUID)
			if len(first) == 0 && len(second) == 0 {
				return nil
			}
			comparisons[i] = &domain.MemberComparison{
				ExampleID:  e.ID,
				Text:       e.Text,
				First:      first,
				Second:     second,
				Comparison: annotation.Compare(first, second),
			}
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	res := make([]domain.MemberComparison, 0, len(comparisons))
	for _, c := range comparisons {
		if c != nil {
			res = append(res, *c)
		}
	}
	return res, nil
}

func (svc *service) LabelDistributions(ctx context.Context, projectID int64,
	attrNames, values []string, view domain.View) (int64, []domain.LabelDistribution, error) {
	memberUIDs, err := svc.filterMembersByAttributes(ctx, projectID, attrNames, values)
	if err != nil {
		return 0, nil, err
	}
	totalMembers := int64(len(memberUIDs))
	if totalMembers == 0 {
		return 0, []domain.LabelDistribution{}, nil
	}

	ids, err := svc.exampleSvc.MultiAnnotatedExamples(ctx, projectID)
	if err != nil {
		return 0, nil, err
	}
	dists := make([]*domain.LabelDistribution, len(ids))
	var eg errgroup.Group
	eg.SetLimit(maxConcurrentExamples)
	for i := range ids {
		i := i
		eg.Go(func() error {
			uids, sets, err := svc.annotationsByUID(ctx, ids[i], memberUIDs)
			if err != nil {
				return err
			}
			if len(uids) == 0 {
				return nil
			}
			labels := make(map[string]int64)
			for _, uid := range uids {
				for _, a := range sets[uid] {
					if a.Label != "" {
						labels[a.Label]++
					}
				}
			}
			rate := domain.AgreementRate(labels, int64(len(uids)))
			dists[i] = &domain.LabelDistribution{
				ExampleID:     ids[i],
				Labels:        labels,
				AgreementRate: rate,
				IsAgreement:   rate >= domain.AgreementRateBucket,
			}
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return 0, nil, err
	}

	res := make([]domain.LabelDistribution, 0, len(dists))
	for _, d := range dists {
		if d == nil {
			continue
		}
		switch view {
		case domain.ViewAgreement:
			if !d.IsAgreement {
				continue
			}
		case domain.ViewDisagreement:
			if d.IsAgreement {
				continue
			}
		}
		res = append(res, *d)
	}
	return totalMembers, res, nil
}

func (svc *service) AttributeDescriptions(ctx context.Context, projectID int64,
	memberIDs []int64, attrNames []string) (map[string][]domain.ValueShare, error) {
	p, err := svc.projectSvc.Detail(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.PerspectiveID == 0 {
		return nil, ErrNoPerspective
	}
	if len(memberIDs) == 0 {
		members, err := svc.projectSvc.Members(ctx, projectID)
		if err != nil {
			return nil, err
		}
		memberIDs = make([]int64, 0, len(members))
		for _, m := range members {
			memberIDs = append(memberIDs, m.UID)
		}
	}
	grouped, err := svc.perspectiveSvc.GroupedDescriptions(ctx, p.PerspectiveID, memberIDs, attrNames)
	if err != nil {
		return nil, err
	}
	return domain.CrossTab(grouped), nil
}

// filterMembersByAttributes 按属性取值筛成员。没给筛选条件就返回全部成员。
// values 和 attrNames 按位置一一对应。
func (svc *service) filterMembersByAttributes(ctx context.Context, projectID int64,
	attrNames, values []string) ([]int64, error) {
	members, err := svc.projectSvc.Members(ctx, projectID)
	if err != nil {
		return nil, err
	}
	uids := make([]int64, 0, len(members))
	for _, m := range members {
		uids = append(uids, m.UID)
	}
	if len(attrNames) == 0 {
		return uids, nil
	}

	p, err := svc.projectSvc.Detail(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.PerspectiveID == 0 {
		return nil, ErrNoPerspective
	}
	grouped, err := svc.perspectiveSvc.GroupedDescriptions(ctx, p.PerspectiveID, uids, attrNames)
	if err != nil {
		return nil, err
	}
	filtered := make([]int64, 0, len(uids))
	for _, uid := range uids {
		attrs, ok := grouped[uid]
		if !ok {
			continue
		}
		match := true
		for i, name := range attrNames {
			if i < len(values) && values[i] != "" && attrs[name] != values[i] {
				match = false
				break
			}
			if _, ok := attrs[name]; !ok {
				match = false
				break
			}
		}
		if match {
			filtered = append(filtered, uid)
		}
	}
	return filtered, nil
}

// annotationSets 抽取一条样本上每个确认者的标注集。
// 单个标注员抽取失败按空集处理，不让整份报表失败。
func (svc *service) annotationSets(ctx context.Context, exampleID int64, memberIDs []int64) ([][]annotation.Annotation, error) {
	uids, sets, err := svc.annotationsByUID(ctx, exampleID, memberIDs)
	if err != nil {
		return nil, err
	}
	res := make([][]annotation.Annotation, 0, len(uids))
	for _, uid := range uids {
		res = append(res, sets[uid])
	}
	return res, nil
}

func (svc *service) annotationsByUID(ctx context.Context, exampleID int64, memberIDs []int64) ([]int64, map[int64][]annotation.Annotation, error) {
	e, err := svc.exampleSvc.Detail(ctx, exampleID)
	if err != nil {
		return nil, nil, err
	}
	states, err := svc.exampleSvc.States(ctx, exampleID)
	if err != nil {
		return nil, nil, err
	}
	var wanted map[int64]struct{}
	if len(memberIDs) > 0 {
		wanted = make(map[int64]struct{}, len(memberIDs))
		for _, uid := range memberIDs {
			wanted[uid] = struct{}{}
		}
	}
	uids := make([]int64, 0, len(states))
	sets := make(map[int64][]annotation.Annotation, len(states))
	for _, s := range states {
		if wanted != nil {
			if _, ok := wanted[s.UID]; !ok {
				continue
			}
		}
		if _, ok := sets[s.UID]; ok {
			continue
		}
		uids = append(uids, s.UID)
		sets[s.UID] = svc.extractor.ExtractSafe(ctx, e.Meta, e.ID, s.UID)
	}
	return uids, sets, nil
}
