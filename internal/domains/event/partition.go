package event

import (
	"sort"
	"time"
)

// Today chuẩn hóa một instant về UTC calendar date (midnight)
// Mọi date comparison trong package này đi qua đây để tránh timezone drift
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateFor dựng calendar date từ (year, month, day) trong UTC
// Không đi qua local time để ngày không bị xê dịch
func DateFor(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// IsPastFor so sánh event date với today (cả hai đã là UTC midnight)
// Event đúng ngày hôm nay chưa phải past
func IsPastFor(date, today time.Time) bool {
	return date.Before(today)
}

// Partition chia events thành hai bucket:
// - upcoming: date >= today VÀ is_past = false, sort ngày gần nhất trước
// - past: phần còn lại, sort ngày mới nhất trước
// Flag is_past thắng date comparison: admin có thể ép một event tương lai
// vào bucket past (vd: đã cancel) mà không cần đổi ngày
func Partition(events []Event, today time.Time) (upcoming, past []Event) {
	upcoming = []Event{}
	past = []Event{}

	for _, e := range events {
		if !e.IsPast && !e.Date.Before(today) {
			upcoming = append(upcoming, e)
		} else {
			past = append(past, e)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].Date.After(past[j].Date)
	})

	return upcoming, past
}
