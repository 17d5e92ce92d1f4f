package service

import (
	"context"
	"school-hub/biz/application/dto/school"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/repository/reportcard"
	"school-hub/biz/infrastructure/repository/user"
	"school-hub/biz/infrastructure/util/policy"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type IReportCardService interface {
	ListReportCards(ctx context.Context, req *school.ListReportCardsReq) ([]*school.ReportCardInfo, error)
	CreateReportCard(ctx context.Context, req *school.CreateReportCardReq) (*school.ReportCardInfo, error)
	UpdateReportCard(ctx context.Context, req *school.UpdateReportCardReq) (*school.ReportCardInfo, error)
}

type ReportCardService struct {
	UserMapper       user.Mapper
	ReportCardMapper reportcard.Mapper
}

var ReportCardServiceSet = wire.NewSet(
	wire.Struct(new(ReportCardService), "*"),
	wire.Bind(new(IReportCardService), new(*ReportCardService)),
)

// ListReportCards 查询学生成绩单, 按最近更新时间降序
func (s *ReportCardService) ListReportCards(ctx context.Context, req *school.ListReportCardsReq) ([]*school.ReportCardInfo, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if !policy.CanRead(caller, req.StudentId) {
		return nil, consts.ErrForbidden
	}

	cards, err := s.ReportCardMapper.FindByStudent(ctx, req.StudentId)
	if err != nil {
		return nil, err
	}

	infos := make([]*school.ReportCardInfo, 0, len(cards))
	for _, rc := range cards {
		info, err := toReportCardInfo(rc)
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// CreateReportCard 创建某学期的成绩单, 同学期重复创建冲突
func (s *ReportCardService) CreateReportCard(ctx context.Context, req *school.CreateReportCardReq) (*school.ReportCardInfo, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if !policy.CanWrite(caller) {
		return nil, consts.ErrForbidden
	}
	if req.Term == "" || req.Grades == nil {
		return nil, consts.ErrInvalidParams
	}

	rc := &reportcard.ReportCard{
		StudentID: req.StudentId,
		Term:      req.Term,
		Grades:    toGrades(req.Grades),
		Comments:  req.Comments,
	}
	if err = s.ReportCardMapper.Insert(ctx, rc); err != nil {
		return nil, err
	}

	return toReportCardInfo(rc)
}

// UpdateReportCard 整体覆盖成绩与评语并刷新更新时间, 不存在则报404
func (s *ReportCardService) UpdateReportCard(ctx context.Context, req *school.UpdateReportCardReq) (*school.ReportCardInfo, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if !policy.CanWrite(caller) {
		return nil, consts.ErrForbidden
	}
	// grades 必须显式给出, 缺省不等于清空
	if req.Term == "" || req.Grades == nil {
		return nil, consts.ErrInvalidParams
	}

	if err = s.ReportCardMapper.Overwrite(ctx, req.StudentId, req.Term, toGrades(req.Grades), req.Comments); err != nil {
		return nil, err
	}

	rc, err := s.ReportCardMapper.FindOneByStudentAndTerm(ctx, req.StudentId, req.Term)
	if err != nil {
		return nil, err
	}
	return toReportCardInfo(rc)
}

func toGrades(grades []school.GradeInfo) []reportcard.Grade {
	return lo.Map(grades, func(g school.GradeInfo, _ int) reportcard.Grade {
		return reportcard.Grade{Subject: g.Subject, Grade: g.Grade}
	})
}

func toReportCardInfo(rc *reportcard.ReportCard) (*school.ReportCardInfo, error) {
	info := &school.ReportCardInfo{
		Id:        rc.ID.Hex(),
		Student:   rc.StudentID,
		Term:      rc.Term,
		Grades:    []school.GradeInfo{},
		Comments:  rc.Comments,
		UpdatedAt: rc.UpdateTime,
	}
	if err := copier.Copy(&info.Grades, &rc.Grades); err != nil {
		return nil, err
	}
	return info, nil
}
