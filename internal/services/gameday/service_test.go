package gameday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/chronle/chronle/internal/dependencies/mocks"
	"github.com/chronle/chronle/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	clock *mocks.MockClock
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
}

func (s *ServiceSuite) newService(cfg Config) *Service {
	svc, err := New(s.clock, cfg)
	s.Require().NoError(err)
	return svc
}

func (s *ServiceSuite) TestMidnightCutoffUsesLocalCalendarDate() {
	svc := s.newService(DefaultConfig())

	// Noon UTC on June 1 is 8am in New York, still June 1
	s.Equal(model.Day("2024-06-01"), svc.Today())
}

func (s *ServiceSuite) TestResolvesInReferenceZoneNotUTC() {
	svc := s.newService(DefaultConfig())

	// 02:00 UTC June 2 is 22:00 June 1 in New York
	s.clock.Set(time.Date(2024, 6, 2, 2, 0, 0, 0, time.UTC))
	s.Equal(model.Day("2024-06-01"), svc.Today())

	// 05:00 UTC June 2 is 01:00 June 2 in New York
	s.clock.Set(time.Date(2024, 6, 2, 5, 0, 0, 0, time.UTC))
	s.Equal(model.Day("2024-06-02"), svc.Today())
}

func (s *ServiceSuite) TestNonMidnightCutoff() {
	svc := s.newService(Config{Timezone: "America/New_York", CutoffHour: 20})

	// 19:59 local on June 2: before the 8pm cutoff, game day is June 1
	s.clock.Set(time.Date(2024, 6, 2, 19, 59, 0, 0, svc.Location()))
	s.Equal(model.Day("2024-06-01"), svc.Today())

	// 20:00 local on June 2: at the cutoff, game day is June 2
	s.clock.Set(time.Date(2024, 6, 2, 20, 0, 0, 0, svc.Location()))
	s.Equal(model.Day("2024-06-02"), svc.Today())
}

func (s *ServiceSuite) TestCutoffCrossesMonthBoundary() {
	svc := s.newService(Config{Timezone: "America/New_York", CutoffHour: 20})

	s.clock.Set(time.Date(2024, 7, 1, 1, 0, 0, 0, svc.Location()))
	s.Equal(model.Day("2024-06-30"), svc.Today())
}

func (s *ServiceSuite) TestEmptyTimezoneDefaults() {
	svc := s.newService(Config{})
	s.Equal(DefaultTimezone, svc.Location().String())
}

func (s *ServiceSuite) TestInvalidConfig() {
	_, err := New(s.clock, Config{Timezone: "Not/AZone"})
	s.Error(err)

	_, err = New(s.clock, Config{Timezone: DefaultTimezone, CutoffHour: 24})
	s.Error(err)

	_, err = New(s.clock, Config{Timezone: DefaultTimezone, CutoffHour: -1})
	s.Error(err)
}

func (s *ServiceSuite) TestDeterministicForFixedInstant() {
	svc := s.newService(DefaultConfig())

	first := svc.Today()
	second := svc.Today()
	s.Equal(first, second)
}
