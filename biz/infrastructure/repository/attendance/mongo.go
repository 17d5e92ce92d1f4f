package attendance

import (
	"context"
	"errors"
	"school-hub/biz/infrastructure/config"
	"school-hub/biz/infrastructure/consts"
	"school-hub/biz/infrastructure/util/log"
	"time"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixAttendanceCacheKey = "cache:attendance"
	AttendanceCollectionName = "attendance"
)

type Mapper interface {
	Insert(ctx context.Context, a *Attendance) error
	FindOneByStudentAndDate(ctx context.Context, studentID string, date time.Time) (*Attendance, error)
	FindByStudentInRange(ctx context.Context, studentID string, start, end time.Time) ([]*Attendance, error)
	UpdateStatus(ctx context.Context, studentID string, date time.Time, status string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewAttendanceMongoMapper collection: %s", AttendanceCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, AttendanceCollectionName, config.Cache)

	// (student, date) 唯一索引, 并发重复创建由存储层兜底
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := conn.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: consts.StudentID, Value: 1}, {Key: consts.Date, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Error("create attendance index failed: %v", err)
	}

	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, a *Attendance) error {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
		a.CreateTime = time.Now()
		a.UpdateTime = a.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return consts.ErrAttendanceExists
	}
	return err
}

func (m *MongoMapper) FindOneByStudentAndDate(ctx context.Context, studentID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := m.conn.FindOneNoCache(ctx, &a, bson.M{
		consts.StudentID: studentID,
		consts.Date:      date,
	})
	switch {
	case err == nil:
		return &a, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrAttendanceNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByStudentInRange(ctx context.Context, studentID string, start, end time.Time) ([]*Attendance, error) {
	var records []*Attendance
	filter := bson.M{
		consts.StudentID: studentID,
		consts.Date:      bson.M{"$gte": start, "$lte": end},
	}

	err := m.conn.Find(ctx, &records, filter, &options.FindOptions{
		Sort: bson.M{consts.Date: 1},
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (m *MongoMapper) UpdateStatus(ctx context.Context, studentID string, date time.Time, status string) error {
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{
		consts.StudentID: studentID,
		consts.Date:      date,
	}, bson.M{
		"$set": bson.M{
			"status":          status,
			consts.UpdateTime: time.Now(),
		},
	})
	if err != nil {
		log.CtxError(ctx, "update attendance failed: %v", err)
		return consts.ErrUpdate
	}
	if res.MatchedCount == 0 {
		return consts.ErrAttendanceNotFound
	}
	return nil
}
