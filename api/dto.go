package api

type ScheduleItem struct {
	WeekDay int    `json:"week_day"`
	From    string `json:"from"`
	To      string `json:"to"`
}

type RegisterClassRequest struct {
	Name     string         `json:"name"`
	Avatar   string         `json:"avatar"`
	Whatsapp string         `json:"whatsapp"`
	Bio      string         `json:"bio"`
	Subject  string         `json:"subject"`
	Cost     float64        `json:"cost"`
	Schedule []ScheduleItem `json:"schedule"`
}

type SearchQuery struct {
	WeekDay string `json:"week_day"`
	Subject string `json:"subject"`
	Time    string `json:"time"`
}

type ClassResponse struct {
	ID       int64   `json:"id"`
	Subject  string  `json:"subject"`
	Cost     float64 `json:"cost"`
	UserID   int64   `json:"user_id"`
	Name     string  `json:"name"`
	Avatar   string  `json:"avatar"`
	Whatsapp string  `json:"whatsapp"`
	Bio      string  `json:"bio"`
}

type ConnectionRequest struct {
	UserID int64 `json:"user_id"`
}
