package usecases

import "time"

// Clock overrides for deterministic tests.

func (u *BookingUsecase) SetClock(now func() time.Time) { u.now = now }

func (u *ReviewUsecase) SetClock(now func() time.Time) { u.now = now }

func (u *VerificationUsecase) SetClock(now func() time.Time) { u.now = now }
