package reportcard

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
	prefixReportCardCacheKey = "cache:reportcard"
	ReportCardCollectionName = "report_card"
)

type Mapper interface {
	Insert(ctx context.Context, rc *ReportCard) error
	FindOneByStudentAndTerm(ctx context.Context, studentID, term string) (*ReportCard, error)
	FindByStudent(ctx context.Context, studentID string) ([]*ReportCard, error)
	Overwrite(ctx context.Context, studentID, term string, grades []Grade, comments string) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewReportCardMongoMapper collection: %s", ReportCardCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, ReportCardCollectionName, config.Cache)

	// (student, term) 唯一索引, 并发重复创建由存储层兜底
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := conn.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: consts.StudentID, Value: 1}, {Key: consts.Term, Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Error("create report card index failed: %v", err)
	}

	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, rc *ReportCard) error {
	if rc.ID.IsZero() {
		rc.ID = primitive.NewObjectID()
		rc.CreateTime = time.Now()
		rc.UpdateTime = rc.CreateTime
	}
	if rc.Grades == nil {
		rc.Grades = []Grade{}
	}
	_, err := m.conn.InsertOneNoCache(ctx, rc)
	if mongo.IsDuplicateKeyError(err) {
		return consts.ErrReportCardExists
	}
	return err
}

func (m *MongoMapper) FindOneByStudentAndTerm(ctx context.Context, studentID, term string) (*ReportCard, error) {
	var rc ReportCard
	err := m.conn.FindOneNoCache(ctx, &rc, bson.M{
		consts.StudentID: studentID,
		consts.Term:      term,
	})
	switch {
	case err == nil:
		return &rc, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrReportCardNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByStudent(ctx context.Context, studentID string) ([]*ReportCard, error) {
	var cards []*ReportCard
	filter := bson.M{consts.StudentID: studentID}

	err := m.conn.Find(ctx, &cards, filter, &options.FindOptions{
		Sort: bson.M{consts.UpdateTime: -1},
	})
	if err != nil {
		return nil, err
	}

	return cards, nil
}

func (m *MongoMapper) Overwrite(ctx context.Context, studentID, term string, grades []Grade, comments string) error {
	if grades == nil {
		grades = []Grade{}
	}
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{
		consts.StudentID: studentID,
		consts.Term:      term,
	}, bson.M{
		"$set": bson.M{
			"grades":          grades,
			"comments":        comments,
			consts.UpdateTime: time.Now(),
		},
	})
	if err != nil {
		log.CtxError(ctx, "update report card failed: %v", err)
		return consts.ErrUpdate
	}
	if res.MatchedCount == 0 {
		return consts.ErrReportCardNotFound
	}
	return nil
}
