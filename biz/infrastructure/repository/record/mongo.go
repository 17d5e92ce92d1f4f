package record

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
	prefixRecordCacheKey = "cache:record"
	RecordCollectionName = "student_record"
)

type Mapper interface {
	Insert(ctx context.Context, r *StudentRecord) error
	FindOneByStudent(ctx context.Context, studentID string) (*StudentRecord, error)
	ReplaceActivities(ctx context.Context, studentID string, activities []Activity) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewRecordMongoMapper collection: %s", RecordCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, RecordCollectionName, config.Cache)

	// 每个学生唯一一份档案, 首次并发读取时由存储层兜底
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := conn.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: consts.StudentID, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Error("create record index failed: %v", err)
	}

	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, r *StudentRecord) error {
	if r.ID.IsZero() {
		r.ID = primitive.NewObjectID()
		r.CreateTime = time.Now()
		r.UpdateTime = r.CreateTime
	}
	if r.Activities == nil {
		r.Activities = []Activity{}
	}
	_, err := m.conn.InsertOneNoCache(ctx, r)
	if mongo.IsDuplicateKeyError(err) {
		return consts.ErrRecordExists
	}
	return err
}

func (m *MongoMapper) FindOneByStudent(ctx context.Context, studentID string) (*StudentRecord, error) {
	var r StudentRecord
	err := m.conn.FindOneNoCache(ctx, &r, bson.M{
		consts.StudentID: studentID,
	})
	switch {
	case err == nil:
		return &r, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrRecordNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) ReplaceActivities(ctx context.Context, studentID string, activities []Activity) error {
	if activities == nil {
		activities = []Activity{}
	}
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{
		consts.StudentID: studentID,
	}, bson.M{
		"$set": bson.M{
			"activities":      activities,
			consts.UpdateTime: time.Now(),
		},
	})
	if err != nil {
		log.CtxError(ctx, "update student record failed: %v", err)
		return consts.ErrUpdate
	}
	if res.MatchedCount == 0 {
		return consts.ErrRecordNotFound
	}
	return nil
}
