//go:build unit

package occupancy_test

import (
	"testing"
	"time"

	"hotel-backoffice/internal/domain/occupancy"
	"hotel-backoffice/internal/domain/room"
	"hotel-backoffice/internal/pkg/patch"
	"hotel-backoffice/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSwap(t *testing.T) {
	current := builder.NewRoomBuilder().WithNumber("101").WithRate(5000).MustBuild()
	selected := builder.NewRoomBuilder().WithNumber("202").WithRate(7000).MustBuild()
	// 2025-03-10 14:00 to 2025-03-12 12:00 PKT, two nights after rounding
	res := builder.NewReservationBuilder().ForRoom(current.ID()).
		Between(at(2025, time.March, 10, 14, 0, builder.PKT), at(2025, time.March, 12, 12, 0, builder.PKT)).Build()

	base := func() occupancy.SwapInput {
		return occupancy.SwapInput{
			Reservation: res,
			NewRoomID:   current.ID(),
			Checkin:     "2025-03-10",
			Checkout:    "2025-03-12",
			CurrentRoom: current,
		}
	}

	cases := []struct {
		name          string
		mutate        func(in *occupancy.SwapInput)
		expectedDelta occupancy.SwapDelta
		expectedCost  occupancy.CostProjection
		expectedStart time.Time
		expectedEnd   time.Time
		expectedErr   error
	}{
		{
			name:        "unchanged submission",
			mutate:      func(in *occupancy.SwapInput) {},
			expectedErr: occupancy.ErrNoChanges,
		},
		{
			name: "empty submission keeps everything",
			mutate: func(in *occupancy.SwapInput) {
				in.NewRoomID = uuid.Nil
				in.Checkin = ""
				in.Checkout = "  "
			},
			expectedErr: occupancy.ErrNoChanges,
		},
		{
			name:          "checkout only",
			mutate:        func(in *occupancy.SwapInput) { in.Checkout = "2025-03-13" },
			expectedDelta: occupancy.SwapDelta{NewCheckout: patch.Ptr("2025-03-13")},
			expectedStart: res.StartAt(),
			expectedEnd:   at(2025, time.March, 13, 12, 0, builder.PKT),
			expectedCost: occupancy.CostProjection{
				CurrentNights:   2,
				NewNights:       3,
				CurrentEstimate: room.NewMoney(10000),
				NewEstimate:     room.NewMoney(15000),
				Difference:      room.NewMoney(5000),
			},
		},
		{
			name: "room and checkout change",
			mutate: func(in *occupancy.SwapInput) {
				in.NewRoomID = selected.ID()
				in.SelectedRoom = selected
				in.Checkout = "2025-03-13"
			},
			expectedDelta: occupancy.SwapDelta{
				NewRoomID:   patch.Ptr(selected.ID()),
				NewCheckout: patch.Ptr("2025-03-13"),
			},
			expectedStart: res.StartAt(),
			expectedEnd:   at(2025, time.March, 13, 12, 0, builder.PKT),
			expectedCost: occupancy.CostProjection{
				CurrentNights:   2,
				NewNights:       3,
				CurrentEstimate: room.NewMoney(10000),
				NewEstimate:     room.NewMoney(21000),
				Difference:      room.NewMoney(11000),
			},
		},
		{
			name: "room only",
			mutate: func(in *occupancy.SwapInput) {
				in.NewRoomID = selected.ID()
				in.SelectedRoom = selected
			},
			expectedDelta: occupancy.SwapDelta{NewRoomID: patch.Ptr(selected.ID())},
			expectedStart: res.StartAt(),
			expectedEnd:   res.EndAt(),
			expectedCost: occupancy.CostProjection{
				CurrentNights:   2,
				NewNights:       2,
				CurrentEstimate: room.NewMoney(10000),
				NewEstimate:     room.NewMoney(14000),
				Difference:      room.NewMoney(4000),
			},
		},
		{
			name: "shorter stay is a negative difference",
			mutate: func(in *occupancy.SwapInput) {
				in.Checkout = "2025-03-11"
			},
			expectedDelta: occupancy.SwapDelta{NewCheckout: patch.Ptr("2025-03-11")},
			expectedStart: res.StartAt(),
			expectedEnd:   at(2025, time.March, 11, 12, 0, builder.PKT),
			expectedCost: occupancy.CostProjection{
				CurrentNights:   2,
				NewNights:       1,
				CurrentEstimate: room.NewMoney(10000),
				NewEstimate:     room.NewMoney(5000),
				Difference:      room.NewMoney(-5000),
			},
		},
		{
			name: "selected room not loaded contributes nothing",
			mutate: func(in *occupancy.SwapInput) {
				in.NewRoomID = selected.ID()
			},
			expectedDelta: occupancy.SwapDelta{NewRoomID: patch.Ptr(selected.ID())},
			expectedStart: res.StartAt(),
			expectedEnd:   res.EndAt(),
			expectedCost: occupancy.CostProjection{
				CurrentNights:   2,
				NewNights:       2,
				CurrentEstimate: room.NewMoney(10000),
				NewEstimate:     room.NewMoney(10000),
				Difference:      room.NewMoney(0),
			},
		},
		{
			name: "checkout equal to checkin",
			mutate: func(in *occupancy.SwapInput) {
				in.Checkin = "2025-03-12"
			},
			expectedErr: occupancy.ErrInvalidDateRange,
		},
		{
			name: "checkout before checkin",
			mutate: func(in *occupancy.SwapInput) {
				in.Checkin = "2025-03-14"
				in.Checkout = "2025-03-13"
			},
			expectedErr: occupancy.ErrInvalidDateRange,
		},
		{
			name:        "malformed date",
			mutate:      func(in *occupancy.SwapInput) { in.Checkout = "13/03/2025" },
			expectedErr: occupancy.ErrInvalidDate,
		},
		{
			name:        "missing reservation",
			mutate:      func(in *occupancy.SwapInput) { in.Reservation = nil },
			expectedErr: occupancy.ErrMissingBooking,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := base()
			c.mutate(&in)

			plan, err := cal.ComputeSwap(in)

			if c.expectedErr != nil {
				require.ErrorIs(t, err, c.expectedErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(c.expectedDelta, plan.Delta); diff != "" {
				t.Errorf("delta mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(c.expectedCost, plan.Cost, cmp.AllowUnexported(room.Money{})); diff != "" {
				t.Errorf("cost mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, cal.Location(), plan.Checkin.Location())
			assert.True(t, plan.Checkout.After(plan.Checkin))
			assert.True(t, c.expectedStart.Equal(plan.StartAt), "start %s, want %s", plan.StartAt, c.expectedStart)
			assert.True(t, c.expectedEnd.Equal(plan.EndAt), "end %s, want %s", plan.EndAt, c.expectedEnd)
		})
	}
}

func TestComputeSwapMovedCheckinKeepsTimeOfDay(t *testing.T) {
	rm := builder.NewRoomBuilder().MustBuild()
	res := builder.NewReservationBuilder().ForRoom(rm.ID()).
		Between(at(2025, time.March, 10, 14, 0, builder.PKT), at(2025, time.March, 12, 12, 0, builder.PKT)).Build()

	plan, err := cal.ComputeSwap(occupancy.SwapInput{
		Reservation: res,
		Checkin:     "2025-03-11",
		CurrentRoom: rm,
	})

	require.NoError(t, err)
	assert.True(t, at(2025, time.March, 11, 14, 0, builder.PKT).Equal(plan.StartAt))
	assert.True(t, res.EndAt().Equal(plan.EndAt))
	assert.Equal(t, 1, plan.Cost.NewNights)
}

func TestComputeSwapUsesCalendarZone(t *testing.T) {
	rm := builder.NewRoomBuilder().MustBuild()
	// 20:00 UTC on the 10th is already the 11th in PKT
	start := time.Date(2025, time.March, 10, 20, 0, 0, 0, time.UTC)
	res := builder.NewReservationBuilder().ForRoom(rm.ID()).Between(start, start.Add(48*time.Hour)).Build()

	_, err := cal.ComputeSwap(occupancy.SwapInput{
		Reservation: res,
		Checkin:     "2025-03-11",
		Checkout:    "2025-03-13",
		CurrentRoom: rm,
	})

	require.ErrorIs(t, err, occupancy.ErrNoChanges)
}

func TestComputeSwapWithoutCurrentRoom(t *testing.T) {
	target := builder.NewRoomBuilder().WithRate(6000).MustBuild()
	res := builder.NewReservationBuilder().WithoutRoom().Between(builder.Day(1), builder.Day(3)).Build()

	plan, err := cal.ComputeSwap(occupancy.SwapInput{
		Reservation:  res,
		NewRoomID:    target.ID(),
		SelectedRoom: target,
	})

	require.NoError(t, err)
	require.NotNil(t, plan.Delta.NewRoomID)
	assert.Equal(t, target.ID(), *plan.Delta.NewRoomID)
	assert.Equal(t, int64(0), plan.Cost.CurrentEstimate.Amount())
	assert.Equal(t, int64(12000), plan.Cost.NewEstimate.Amount())
}

func TestChangeRoomCandidates(t *testing.T) {
	current := builder.NewRoomBuilder().WithNumber("101").MustBuild()
	maintenance := builder.NewRoomBuilder().WithNumber("102").AsMaintenance().MustBuild()
	occupied := builder.NewRoomBuilder().WithNumber("104").WithStatus("occupied").MustBuild()
	free := builder.NewRoomBuilder().WithNumber("103").MustBuild()
	rooms := []*room.Room{occupied, current, nil, maintenance, free}

	t.Run("excludes maintenance and the current room", func(t *testing.T) {
		actual := occupancy.ChangeRoomCandidates(rooms, patch.Ptr(current.ID()))

		if diff := cmp.Diff([]*room.Room{free, occupied}, actual, cmpOpts...); diff != "" {
			t.Errorf("candidates mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("unassigned reservation may take any selectable room", func(t *testing.T) {
		actual := occupancy.ChangeRoomCandidates(rooms, nil)

		if diff := cmp.Diff([]*room.Room{current, free, occupied}, actual, cmpOpts...); diff != "" {
			t.Errorf("candidates mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no rooms", func(t *testing.T) {
		assert.Empty(t, occupancy.ChangeRoomCandidates(nil, nil))
	})
}
