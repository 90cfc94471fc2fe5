package quota

type QuotaEntry struct {
	Date  string `json:"date" binding:"required"`
	Quota int    `json:"quota"`
}

type BulkSetRequest struct {
	Entries []QuotaEntry `json:"entries" binding:"required"`
}

type AvailabilityResponse struct {
	RoomID    int64  `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
}
