package converter

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Row types mirror the column lists of the read queries; pgx maps them by db tag.

type RoomRow struct {
	ID         pgtype.UUID `db:"id"`
	RoomNumber string      `db:"room_number"`
	Category   string      `db:"category"`
	BedType    string      `db:"bed_type"`
	View       string      `db:"view"`
	Rate       int64       `db:"rate"`
	Status     string      `db:"status"`
}

type GuestRow struct {
	ID         pgtype.UUID        `db:"id"`
	RoomID     pgtype.UUID        `db:"room_id"`
	FullName   string             `db:"full_name"`
	Status     string             `db:"status"`
	CheckOutAt pgtype.Timestamptz `db:"check_out_at"`
}

type ReservationRow struct {
	ID       pgtype.UUID        `db:"id"`
	RoomID   pgtype.UUID        `db:"room_id"`
	FullName string             `db:"full_name"`
	StartAt  pgtype.Timestamptz `db:"start_at"`
	EndAt    pgtype.Timestamptz `db:"end_at"`
	Status   string             `db:"status"`
}
