package provider

import (
	"school-hub/biz/application/service"
	"school-hub/biz/infrastructure/config"
	"school-hub/biz/infrastructure/repository/attendance"
	"school-hub/biz/infrastructure/repository/record"
	"school-hub/biz/infrastructure/repository/reportcard"
	"school-hub/biz/infrastructure/repository/user"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config            *config.Config
	AuthService       service.AuthService
	AttendanceService service.AttendanceService
	RecordService     service.RecordService
	ReportCardService service.ReportCardService
}

func Get() *Provider {
	return provider
}

// Set 注入测试用Provider
func Set(p *Provider) {
	provider = p
}

var ApplicationSet = wire.NewSet(
	service.AuthServiceSet,
	service.AttendanceServiceSet,
	service.RecordServiceSet,
	service.ReportCardServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	wire.Bind(new(user.Mapper), new(*user.MongoMapper)),
	attendance.NewMongoMapper,
	wire.Bind(new(attendance.Mapper), new(*attendance.MongoMapper)),
	record.NewMongoMapper,
	wire.Bind(new(record.Mapper), new(*record.MongoMapper)),
	reportcard.NewMongoMapper,
	wire.Bind(new(reportcard.Mapper), new(*reportcard.MongoMapper)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
