package astro

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aikalabs/aika-go/internal/ephemeris"
)

// testObserver anchors Turku at the given UTC instant. Helsinki time is
// UTC+2 in winter, so the local midnight of 2026-01-09 is 2026-01-08T22:00Z.
func testObserver(nowUTC time.Time) Observer {
	return NewObserver(60.4518, 22.2666, nowUTC, "Europe/Helsinki")
}

func winterInstant(hourUTC, minUTC int) time.Time {
	return time.Date(2026, time.January, 9, hourUTC, minUTC, 0, 0, time.UTC)
}

func TestNewObserverDegradedTimezone(t *testing.T) {
	obs := NewObserver(60, 22, winterInstant(12, 0), "Not/AZone")
	assert.True(t, obs.TZ.Degraded())
	// Fixed UTC+2 still yields local civil time, never silent UTC.
	assert.Equal(t, 14, obs.LocalTime.Hour())
}

func TestSolar(t *testing.T) {
	p := &fakeProvider{sun: ephemeris.BodyState{AltitudeDeg: 5.6, AzimuthDeg: 202.7}}
	e := New(p)
	obs := testObserver(winterInstant(12, 0))

	info, err := e.Solar(obs)
	require.NoError(t, err)

	assert.Equal(t, "07:00", obs.TZ.FormatClock(info.Sunrise))
	assert.Equal(t, "10:30", obs.TZ.FormatClock(info.Noon))
	assert.Equal(t, "15:00", obs.TZ.FormatClock(info.Sunset))
	assert.True(t, info.Dawn.Before(info.Sunrise))
	assert.True(t, info.Sunset.Before(info.Dusk))
	assert.InDelta(t, 5.6, info.ElevationDeg, 1e-9)
	assert.InDelta(t, 202.7, info.AzimuthDeg, 1e-9)
}

func TestSolarPropagatesProviderFailure(t *testing.T) {
	p := &fakeProvider{events: func(time.Time) (ephemeris.SolarDayEvents, error) {
		return ephemeris.SolarDayEvents{}, ephemeris.ErrNoDayEvents
	}}
	_, err := New(p).Solar(testObserver(winterInstant(12, 0)))
	assert.Error(t, err)
}

func TestDaylightSameLength(t *testing.T) {
	e := New(&fakeProvider{})
	info, err := e.Daylight(testObserver(winterInstant(12, 0)))
	require.NoError(t, err)

	assert.Equal(t, 480, info.DaylightMinutes)
	assert.Equal(t, 0, info.ChangeMinutes)
	assert.Equal(t, Same, info.Direction)
}

func TestDaylightDirectionBySign(t *testing.T) {
	today := time.Date(2026, time.January, 8, 22, 0, 0, 0, time.UTC)

	cases := []struct {
		name            string
		yesterdayLength time.Duration
		wantChange      int
		wantDirection   ChangeDirection
	}{
		{"longer", 7*time.Hour + 50*time.Minute, 10, Longer},
		{"shorter", 8*time.Hour + 5*time.Minute, -5, Shorter},
		{"same", 8 * time.Hour, 0, Same},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &fakeProvider{events: func(midnight time.Time) (ephemeris.SolarDayEvents, error) {
				length := 8 * time.Hour
				if midnight.Before(today) {
					length = tc.yesterdayLength
				}
				return ephemeris.SolarDayEvents{
					Sunrise: midnight.Add(7 * time.Hour),
					Sunset:  midnight.Add(7 * time.Hour).Add(length),
				}, nil
			}}

			info, err := New(p).Daylight(testObserver(winterInstant(12, 0)))
			require.NoError(t, err)
			assert.Equal(t, tc.wantChange, info.ChangeMinutes)
			assert.Equal(t, tc.wantDirection, info.Direction)
		})
	}
}

func TestDaylightFailsWhenYesterdayUnavailable(t *testing.T) {
	today := time.Date(2026, time.January, 8, 22, 0, 0, 0, time.UTC)
	p := &fakeProvider{events: func(midnight time.Time) (ephemeris.SolarDayEvents, error) {
		if midnight.Before(today) {
			return ephemeris.SolarDayEvents{}, ephemeris.ErrNoDayEvents
		}
		return ephemeris.SolarDayEvents{Sunrise: midnight.Add(7 * time.Hour), Sunset: midnight.Add(15 * time.Hour)}, nil
	}}
	_, err := New(p).Daylight(testObserver(winterInstant(12, 0)))
	assert.Error(t, err)
}

func TestTwilightAllWindows(t *testing.T) {
	e := New(&fakeProvider{})
	// 05:30 UTC falls inside the default morning golden hour (05:00-06:00 UTC).
	tw, err := e.Twilight(testObserver(winterInstant(5, 30)))
	require.NoError(t, err)

	require.NotNil(t, tw.MorningGolden)
	require.NotNil(t, tw.EveningGolden)
	require.NotNil(t, tw.MorningBlue)
	require.NotNil(t, tw.EveningBlue)

	assert.True(t, tw.GoldenHourNow)
	assert.False(t, tw.BlueHourNow)
	assert.Equal(t, "07:00", tw.MorningGolden.Start.Format("15:04"), "windows are local time")
}

func TestTwilightBoundaryInclusive(t *testing.T) {
	e := New(&fakeProvider{})

	// Exactly at the end of the morning blue hour and the start of the
	// morning golden hour; both flags hold on the shared boundary.
	tw, err := e.Twilight(testObserver(winterInstant(5, 0)))
	require.NoError(t, err)
	assert.True(t, tw.GoldenHourNow)
	assert.True(t, tw.BlueHourNow)
}

func TestTwilightPerWindowUnavailable(t *testing.T) {
	p := &fakeProvider{window: func(dir ephemeris.SunDirection, kind ephemeris.TwilightKind) (ephemeris.Window, error) {
		if kind == ephemeris.BlueHour {
			return ephemeris.Window{}, ephemeris.ErrWindowUnavailable
		}
		base := winterInstant(5, 0)
		return ephemeris.Window{Start: base, End: base.Add(time.Hour)}, nil
	}}

	tw, err := New(p).Twilight(testObserver(winterInstant(12, 0)))
	require.NoError(t, err)

	assert.Nil(t, tw.MorningBlue)
	assert.Nil(t, tw.EveningBlue)
	assert.NotNil(t, tw.MorningGolden)
	assert.NotNil(t, tw.EveningGolden)
	assert.False(t, tw.BlueHourNow)
}

func TestTwilightUnexpectedErrorIsolatedPerWindow(t *testing.T) {
	p := &fakeProvider{window: func(dir ephemeris.SunDirection, kind ephemeris.TwilightKind) (ephemeris.Window, error) {
		if dir == ephemeris.Rising && kind == ephemeris.GoldenHour {
			return ephemeris.Window{}, fmt.Errorf("backend hiccup")
		}
		base := winterInstant(5, 0)
		return ephemeris.Window{Start: base, End: base.Add(time.Hour)}, nil
	}}

	tw, err := New(p).Twilight(testObserver(winterInstant(12, 0)))
	require.NoError(t, err)
	assert.Nil(t, tw.MorningGolden)
	assert.NotNil(t, tw.EveningGolden)
}

func TestCountdownBranches(t *testing.T) {
	e := New(&fakeProvider{})

	// Sunrise 05:00 UTC, sunset 13:00 UTC.
	before, err := e.Countdown(testObserver(winterInstant(3, 0)))
	require.NoError(t, err)
	assert.Equal(t, NextSunrise, before.NextEvent)
	assert.Equal(t, 120, before.MinutesRemaining)
	assert.False(t, before.SunIsUp)
	assert.Equal(t, NotPolar, before.Polar)

	during, err := e.Countdown(testObserver(winterInstant(10, 0)))
	require.NoError(t, err)
	assert.Equal(t, NextSunset, during.NextEvent)
	assert.Equal(t, 180, during.MinutesRemaining)
	assert.True(t, during.SunIsUp)

	// After sunset the countdown rolls over to tomorrow's sunrise at
	// 05:00 UTC on the 10th.
	after, err := e.Countdown(testObserver(winterInstant(14, 0)))
	require.NoError(t, err)
	assert.Equal(t, NextSunrise, after.NextEvent)
	assert.Equal(t, 15*60, after.MinutesRemaining)
	assert.False(t, after.SunIsUp)
	assert.Equal(t, 10, after.At.Day())
}

func TestCountdownAtSunriseCountsToSunset(t *testing.T) {
	e := New(&fakeProvider{})
	at, err := e.Countdown(testObserver(winterInstant(5, 0)))
	require.NoError(t, err)
	assert.Equal(t, NextSunset, at.NextEvent)
	assert.True(t, at.SunIsUp)
}

func TestCountdownPolar(t *testing.T) {
	noEvents := func(time.Time) (ephemeris.SolarDayEvents, error) {
		return ephemeris.SolarDayEvents{}, ephemeris.ErrNoDayEvents
	}

	day := &fakeProvider{events: noEvents, sun: ephemeris.BodyState{AltitudeDeg: 12}}
	cd, err := New(day).Countdown(testObserver(winterInstant(12, 0)))
	require.NoError(t, err)
	assert.Equal(t, NoSunEvent, cd.NextEvent)
	assert.Equal(t, PolarDay, cd.Polar)
	assert.True(t, cd.SunIsUp)
	assert.True(t, cd.At.IsZero())

	night := &fakeProvider{events: noEvents, sun: ephemeris.BodyState{AltitudeDeg: -8}}
	cd, err = New(night).Countdown(testObserver(winterInstant(12, 0)))
	require.NoError(t, err)
	assert.Equal(t, NoSunEvent, cd.NextEvent)
	assert.Equal(t, PolarNight, cd.Polar)
	assert.False(t, cd.SunIsUp)
}

func TestLunarGrowthStrategyChain(t *testing.T) {
	nan := math.NaN()

	cases := []struct {
		name  string
		state ephemeris.BodyState
		want  Growth
	}{
		// Elongation wins even when the cruder signals disagree.
		{"elongation positive", ephemeris.BodyState{ElongationDeg: 103, CyclePosition: 0.7, PhasePercent: 61}, Waxing},
		{"elongation negative", ephemeris.BodyState{ElongationDeg: -103, CyclePosition: 0.3, PhasePercent: 40}, Waning},
		// Without elongation the cycle position decides.
		{"cycle waxing", ephemeris.BodyState{ElongationDeg: nan, CyclePosition: 0.3, PhasePercent: 61}, Waxing},
		{"cycle waning", ephemeris.BodyState{ElongationDeg: nan, CyclePosition: 0.7, PhasePercent: 40}, Waning},
		// With both unavailable the illuminated fraction alone decides.
		{"phase waxing", ephemeris.BodyState{ElongationDeg: nan, CyclePosition: nan, PhasePercent: 40}, Waxing},
		{"phase waning", ephemeris.BodyState{ElongationDeg: nan, CyclePosition: nan, PhasePercent: 61}, Waning},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lunarGrowth(tc.state))
		})
	}
}

func TestLunarBasics(t *testing.T) {
	p := &fakeProvider{moon: ephemeris.BodyState{
		PhasePercent: 61.3, ElongationDeg: -103, CyclePosition: 0.714,
		AltitudeDeg: -23.6, AzimuthDeg: 304.8,
	}}

	info, err := New(p).Lunar(testObserver(winterInstant(12, 16)))
	require.NoError(t, err)

	assert.InDelta(t, 61.3, info.PhasePercent, 1e-9)
	assert.Equal(t, Waning, info.Growth)
	assert.Nil(t, info.SpecialPhase)
	require.Len(t, info.UpcomingPhases, 2)
	assert.Equal(t, NewMoon, info.UpcomingPhases[0].Type)
	assert.Equal(t, FullMoon, info.UpcomingPhases[1].Type)
	assert.True(t, info.UpcomingPhases[0].At.Before(info.UpcomingPhases[1].At))
}

func TestLunarSpecialPhase(t *testing.T) {
	newish := &fakeProvider{moon: ephemeris.BodyState{PhasePercent: 0.6}}
	info, err := New(newish).Lunar(testObserver(winterInstant(12, 0)))
	require.NoError(t, err)
	require.NotNil(t, info.SpecialPhase)
	assert.Equal(t, NewMoon, *info.SpecialPhase)

	fullish := &fakeProvider{moon: ephemeris.BodyState{PhasePercent: 99.2, ElongationDeg: 1}}
	info, err = New(fullish).Lunar(testObserver(winterInstant(12, 0)))
	require.NoError(t, err)
	require.NotNil(t, info.SpecialPhase)
	assert.Equal(t, FullMoon, *info.SpecialPhase)
}

func TestLunarDayScopedEvents(t *testing.T) {
	found := func(at time.Time) func(time.Time) (ephemeris.RiseSetOutcome, error) {
		return func(time.Time) (ephemeris.RiseSetOutcome, error) {
			return ephemeris.RiseSetOutcome{Kind: ephemeris.Found, At: at}, nil
		}
	}

	p := &fakeProvider{
		// 22:15 UTC is 00:15 local on the 10th: tomorrow, so rejected.
		rising: found(time.Date(2026, time.January, 9, 22, 15, 0, 0, time.UTC)),
		// 12:00 UTC is 14:00 local today: accepted.
		setting: found(winterInstant(12, 0)),
		transit: func(time.Time) (ephemeris.RiseSetOutcome, error) {
			return ephemeris.RiseSetOutcome{Kind: ephemeris.AlwaysUp}, nil
		},
	}

	info, err := New(p).Lunar(testObserver(winterInstant(10, 0)))
	require.NoError(t, err)

	assert.Nil(t, info.Rise, "tomorrow's moonrise must not appear today")
	require.NotNil(t, info.Set)
	assert.Equal(t, "14:00", info.Set.Format("15:04"))
	assert.Nil(t, info.Transit, "circumpolar outcome leaves the field absent")
}

func TestLunarEventSearchFailureIsNotFatal(t *testing.T) {
	p := &fakeProvider{transit: func(time.Time) (ephemeris.RiseSetOutcome, error) {
		return ephemeris.RiseSetOutcome{}, fmt.Errorf("search diverged")
	}}
	info, err := New(p).Lunar(testObserver(winterInstant(10, 0)))
	require.NoError(t, err)
	assert.Nil(t, info.Transit)
	assert.NotNil(t, info.Rise)
}

func TestUpcomingPhasesOmitFailures(t *testing.T) {
	p := &fakeProvider{nextFull: func(time.Time) (time.Time, error) {
		return time.Time{}, fmt.Errorf("series unavailable")
	}}
	info, err := New(p).Lunar(testObserver(winterInstant(12, 0)))
	require.NoError(t, err)
	require.Len(t, info.UpcomingPhases, 1)
	assert.Equal(t, NewMoon, info.UpcomingPhases[0].Type)
}

func TestUpcomingPhasesSortedAscending(t *testing.T) {
	p := &fakeProvider{
		nextNew:  func(from time.Time) (time.Time, error) { return from.Add(20 * 24 * time.Hour), nil },
		nextFull: func(from time.Time) (time.Time, error) { return from.Add(5 * 24 * time.Hour), nil },
	}
	info, err := New(p).Lunar(testObserver(winterInstant(12, 0)))
	require.NoError(t, err)
	require.Len(t, info.UpcomingPhases, 2)
	assert.Equal(t, FullMoon, info.UpcomingPhases[0].Type)
	assert.Equal(t, NewMoon, info.UpcomingPhases[1].Type)
}

func TestSnapshotSectionsDegradeIndependently(t *testing.T) {
	p := &fakeProvider{bodyErr: fmt.Errorf("backend down")}
	snap := New(p).ComputeSnapshot(testObserver(winterInstant(12, 0)))

	// Position queries fail, day-event queries still work.
	assert.Nil(t, snap.Solar)
	assert.Nil(t, snap.Lunar)
	assert.Nil(t, snap.Eclipse)
	assert.NotNil(t, snap.Daylight)
	assert.NotNil(t, snap.Twilight)
	assert.NotNil(t, snap.Countdown)
}

func TestSnapshotIdempotent(t *testing.T) {
	p := &fakeProvider{
		sun:  ephemeris.BodyState{AltitudeDeg: 5.6, AzimuthDeg: 202.7},
		moon: ephemeris.BodyState{PhasePercent: 61.3, ElongationDeg: -103, AltitudeDeg: -23.6, EclipticLatRad: 0.1},
	}
	e := New(p)
	obs := testObserver(winterInstant(12, 16))

	first := e.ComputeSnapshot(obs)
	second := e.ComputeSnapshot(obs)
	assert.Equal(t, first, second)
}
