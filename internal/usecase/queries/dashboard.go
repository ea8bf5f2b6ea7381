package queries

//go:generate mockgen -source=dashboard.go -destination=../../../tests/mock/queries/dashboard.go -package=queriesmock

import (
	"context"
	"log/slog"
	"time"

	"hotel-backoffice/internal/domain/occupancy"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/pkg/clock"
	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type DashboardQueries interface {
	GetDashboard(ctx context.Context) (*DashboardView, error)
	GetRoomTimeline(ctx context.Context, roomID uuid.UUID) (*RoomTimelineView, error)
}

type dashboardQueriesImpl struct {
	snapshots SnapshotStore
	clock     clock.Clock
	cal       occupancy.Calendar
	logger    *slog.Logger
}

func NewDashboardQueries(snapshots SnapshotStore, clk clock.Clock, cal occupancy.Calendar, logger *slog.Logger) DashboardQueries {
	return &dashboardQueriesImpl{
		snapshots: snapshots,
		clock:     clk,
		cal:       cal,
		logger:    logger,
	}
}

func (q *dashboardQueriesImpl) GetDashboard(ctx context.Context) (*DashboardView, error) {
	now := q.clock.Now()
	snap, err := q.load(ctx, now)
	if err != nil {
		return nil, err
	}

	statuses := occupancy.ResolveAll(snap.Rooms, snap.Guests, snap.Reservations, now, q.cal)

	rooms := make([]RoomStateView, 0, len(statuses))
	for _, s := range statuses {
		rooms = append(rooms, toRoomStateView(s, q.cal))
	}

	return &DashboardView{
		GeneratedAt: now,
		TimeZone:    q.cal.Location().String(),
		Stats:       toStatsView(occupancy.Summarize(statuses)),
		Rooms:       rooms,
	}, nil
}

func (q *dashboardQueriesImpl) GetRoomTimeline(ctx context.Context, roomID uuid.UUID) (*RoomTimelineView, error) {
	now := q.clock.Now()
	snap, err := q.load(ctx, now)
	if err != nil {
		return nil, err
	}

	var target *room.Room
	for _, r := range snap.Rooms {
		if r.ID() == roomID {
			target = r
			break
		}
	}
	if target == nil {
		return nil, errs.Wrapf(errs.ErrRoomNotFound, "room %s", roomID)
	}

	result := occupancy.ResolveRoomState(target, snap.Guests, snap.Reservations, now, q.cal)
	anchor := occupancy.TimelineAnchor(result, now)
	segments := occupancy.BuildTimeline(result.FutureBookings(), anchor)

	return &RoomTimelineView{
		RoomState: toRoomStateView(occupancy.RoomStatus{Room: target, Result: result}, q.cal),
		AnchorEnd: anchor,
		Segments:  toSegmentViews(segments, q.cal),
	}, nil
}

// load reads everything from the start of today so this morning's arrivals are seen.
func (q *dashboardQueriesImpl) load(ctx context.Context, now time.Time) (*Snapshot, error) {
	snap, err := q.snapshots.LoadSnapshot(ctx, q.cal.StartOfDay(now))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	for _, ref := range occupancy.FindDanglingReferences(snap.Rooms, snap.Guests, snap.Reservations) {
		q.logger.DebugContext(ctx, "record references unknown room",
			slog.String("kind", ref.Kind),
			slog.String("id", ref.ID.String()),
			slog.String("room_id", ref.RoomID.String()))
	}
	return snap, nil
}
