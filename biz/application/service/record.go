package service

import (
	"context"
	"errors"
	"school-hub/biz/application/dto/school"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/repository/record"
	"school-hub/biz/infrastructure/repository/user"
	"school-hub/biz/infrastructure/util/log"
	"school-hub/biz/infrastructure/util/policy"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
)

type IRecordService interface {
	GetRecord(ctx context.Context, req *school.GetRecordReq) (*school.RecordInfo, error)
	CreateRecord(ctx context.Context, req *school.CreateRecordReq) (*school.RecordInfo, error)
	UpdateRecord(ctx context.Context, req *school.UpdateRecordReq) (*school.RecordInfo, error)
}

type RecordService struct {
	UserMapper   user.Mapper
	RecordMapper record.Mapper
}

var RecordServiceSet = wire.NewSet(
	wire.Struct(new(RecordService), "*"),
	wire.Bind(new(IRecordService), new(*RecordService)),
)

// GetRecord 读取学生活动档案, 不存在则就地创建一份空档案.
// 并发首读可能同时插入, 撞唯一索引的一方改走重读, 保证每个学生只有一份.
func (s *RecordService) GetRecord(ctx context.Context, req *school.GetRecordReq) (*school.RecordInfo, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if !policy.CanRead(caller, req.StudentId) {
		return nil, consts.ErrForbidden
	}

	r, err := s.RecordMapper.FindOneByStudent(ctx, req.StudentId)
	if errors.Is(err, consts.ErrRecordNotFound) {
		r = &record.StudentRecord{StudentID: req.StudentId, Activities: []record.Activity{}}
		err = s.RecordMapper.Insert(ctx, r)
		if errors.Is(err, consts.ErrRecordExists) {
			r, err = s.RecordMapper.FindOneByStudent(ctx, req.StudentId)
		}
	}
	if err != nil {
		log.CtxError(ctx, "get or create student record failed: %v", err)
		return nil, err
	}

	return toRecordInfo(r)
}

// CreateRecord 显式创建空档案, 已存在则冲突
func (s *RecordService) CreateRecord(ctx context.Context, req *school.CreateRecordReq) (*school.RecordInfo, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if !policy.CanWrite(caller) {
		return nil, consts.ErrForbidden
	}

	r := &record.StudentRecord{StudentID: req.StudentId, Activities: []record.Activity{}}
	if err = s.RecordMapper.Insert(ctx, r); err != nil {
		return nil, err
	}

	return toRecordInfo(r)
}

// UpdateRecord 整体替换活动序列, 不做合并或追加
func (s *RecordService) UpdateRecord(ctx context.Context, req *school.UpdateRecordReq) (*school.RecordInfo, error) {
	caller, err := resolveCaller(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if !policy.CanWrite(caller) {
		return nil, consts.ErrForbidden
	}
	// activities 必须显式给出, 缺省不等于清空
	if req.Activities == nil {
		return nil, consts.ErrInvalidParams
	}

	activities := make([]record.Activity, 0, len(req.Activities))
	for _, a := range req.Activities {
		if a.Score < 0 {
			return nil, consts.ErrInvalidScore
		}
		activities = append(activities, record.Activity{
			Date:    a.Date,
			Name:    a.Name,
			Score:   a.Score,
			Remarks: a.Remarks,
		})
	}

	if err = s.RecordMapper.ReplaceActivities(ctx, req.StudentId, activities); err != nil {
		return nil, err
	}

	r, err := s.RecordMapper.FindOneByStudent(ctx, req.StudentId)
	if err != nil {
		return nil, err
	}
	return toRecordInfo(r)
}

func toRecordInfo(r *record.StudentRecord) (*school.RecordInfo, error) {
	info := &school.RecordInfo{
		Id:         r.ID.Hex(),
		Student:    r.StudentID,
		Activities: []school.ActivityInfo{},
	}
	if err := copier.Copy(&info.Activities, &r.Activities); err != nil {
		return nil, err
	}
	return info, nil
}
