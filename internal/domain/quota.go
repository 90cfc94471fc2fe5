package domain

// RoomQuota is the unsold-unit counter for one (room, date) pair.
// A missing row means no inventory was configured for that date, which the
// ledger treats as zero available, never as unlimited.
type RoomQuota struct {
	ID     int64  `json:"id"`
	RoomID int64  `json:"room_id" gorm:"uniqueIndex:idx_room_quota_date,priority:1"`
	Date   string `json:"date" gorm:"uniqueIndex:idx_room_quota_date,priority:2"`
	Quota  int    `json:"quota"`
}

func (RoomQuota) TableName() string { return "room_quotas" }
