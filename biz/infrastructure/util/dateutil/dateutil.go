package dateutil

import (
	"time"
)

// 考勤查询的时间窗口
const (
	PeriodCurrentWeek = "currentWeek"
	PeriodLastWeek    = "lastWeek"
	PeriodLastMonth   = "lastMonth"
)

var layouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDate 解析客户端提交的日期, 支持 RFC3339 和 yyyy-mm-dd
func ParseDate(s string) (time.Time, error) {
	var t time.Time
	var err error
	for _, layout := range layouts {
		t, err = time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// NormalizeToMidnightUTC 截断到UTC自然日零点, 丢弃时分秒与时区偏移
func NormalizeToMidnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Window 根据period计算查询窗口 [start, end], 两端均为UTC零点.
// currentWeek: 本ISO周周一到今天; lastWeek: 本周一前的7天;
// lastMonth: 上个自然月; 其余取全量历史(纪元到今天).
func Window(period string, now time.Time) (start, end time.Time) {
	today := NormalizeToMidnightUTC(now)

	switch period {
	case PeriodCurrentWeek:
		day := int(today.Weekday())
		if day == 0 {
			day = 7
		}
		start = today.AddDate(0, 0, -day+1)
		end = today
	case PeriodLastWeek:
		day := int(today.Weekday())
		if day == 0 {
			day = 7
		}
		monday := today.AddDate(0, 0, -day+1)
		start = monday.AddDate(0, 0, -7)
		end = monday.AddDate(0, 0, -1)
	case PeriodLastMonth:
		firstOfThisMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		start = firstOfThisMonth.AddDate(0, -1, 0)
		end = firstOfThisMonth.AddDate(0, 0, -1)
	default:
		start = time.Unix(0, 0).UTC()
		end = today
	}
	return start, end
}
