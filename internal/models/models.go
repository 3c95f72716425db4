package models

// Tutor is a person offering to teach, persisted in the users table.
type Tutor struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Avatar   string `db:"avatar"`
	Whatsapp string `db:"whatsapp"`
	Bio      string `db:"bio"`
}

// Class is a (tutor, subject, cost) offering. Created only inside the
// registration transaction, immutable afterwards.
type Class struct {
	ID      int64   `db:"id"`
	Subject string  `db:"subject"`
	Cost    float64 `db:"cost"`
	UserID  int64   `db:"user_id"`
}

// ScheduleSlot is a weekly availability window for a class.
// From and To are minutes since midnight, half-open interval [From, To).
type ScheduleSlot struct {
	ID      int64 `db:"id"`
	ClassID int64 `db:"class_id"`
	WeekDay int   `db:"week_day"`
	From    int   `db:"from"`
	To      int   `db:"to"`
}

// ClassWithTutor is the search result row: a class joined with the public
// fields of its tutor.
type ClassWithTutor struct {
	ClassID  int64   `db:"class_id"`
	Subject  string  `db:"subject"`
	Cost     float64 `db:"cost"`
	UserID   int64   `db:"user_id"`
	Name     string  `db:"name"`
	Avatar   string  `db:"avatar"`
	Whatsapp string  `db:"whatsapp"`
	Bio      string  `db:"bio"`
}

// Connection logs one student-to-tutor contact event. Append-only.
type Connection struct {
	ID     int64 `db:"id"`
	UserID int64 `db:"user_id"`
}
