package astro

// ComputeSnapshot runs all six calculators and assembles their results. Each
// section degrades independently: a failed computation logs a warning and
// leaves its section nil without affecting the other five. The eclipse
// section fails as a whole per its own contract. With a deterministic
// provider the result is identical across repeated calls.
func (e *Engine) ComputeSnapshot(obs Observer) Snapshot {
	var snap Snapshot

	if solar, err := e.Solar(obs); err != nil {
		logger.Warn("solar section unavailable", "error", err)
	} else {
		snap.Solar = &solar
	}

	if daylight, err := e.Daylight(obs); err != nil {
		logger.Warn("daylight section unavailable", "error", err)
	} else {
		snap.Daylight = &daylight
	}

	if twilight, err := e.Twilight(obs); err != nil {
		logger.Warn("twilight section unavailable", "error", err)
	} else {
		snap.Twilight = &twilight
	}

	if countdown, err := e.Countdown(obs); err != nil {
		logger.Warn("countdown section unavailable", "error", err)
	} else {
		snap.Countdown = &countdown
	}

	if lunar, err := e.Lunar(obs); err != nil {
		logger.Warn("lunar section unavailable", "error", err)
	} else {
		snap.Lunar = &lunar
	}

	if eclipse, err := e.Eclipse(obs); err != nil {
		logger.Warn("eclipse section unavailable", "error", err)
	} else {
		snap.Eclipse = &eclipse
	}

	return snap
}
