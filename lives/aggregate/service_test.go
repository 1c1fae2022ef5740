package aggregate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/imtaco/showroom-live/internal/errors"
	"github.com/imtaco/showroom-live/internal/log"
	"github.com/imtaco/showroom-live/internal/ttlcache"
	"github.com/imtaco/showroom-live/lives"
	"github.com/imtaco/showroom-live/lives/mocks"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	platform  *mocks.MockPlatform
	directory *mocks.MockDirectory
	clock     *clockwork.FakeClock
	cache     *ttlcache.Cache[[]lives.LiveRoom]
	svc       *Service
	ctx       context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.platform = mocks.NewMockPlatform(s.ctrl)
	s.directory = mocks.NewMockDirectory(s.ctrl)
	s.clock = clockwork.NewFakeClockAt(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))

	logger := log.NewTest(s.T())
	cache, err := ttlcache.New[[]lives.LiveRoom]("now_live", 0, logger, ttlcache.WithClock(s.clock))
	s.Require().NoError(err)
	s.cache = cache
	s.svc = NewService(s.platform, s.directory, cache, 5*time.Second, &Config{}, logger)
	s.ctx = context.Background()
}

// expectOneOnline sets up a roster of one followed online member, times times over.
func (s *ServiceTestSuite) expectOneOnline(group string, times int) {
	s.directory.EXPECT().ListMembers(gomock.Any(), group).
		Return([]lives.Member{testMembers()[0]}, nil).Times(times)
	s.platform.EXPECT().GetFollowedRooms(gomock.Any()).Return([]lives.RoomFollow{
		{RoomID: 1, RoomName: "Freya", ImageL: "l.jpg", IsOnline: true, RoomURLKey: "48_Freya"},
	}, nil).Times(times)
	s.platform.EXPECT().GetRoomStatus(gomock.Any(), "48_Freya").
		Return(&lives.RoomStatus{StartedAt: 1700000000}, nil).Times(times)
	s.platform.EXPECT().GetStreamingURLs(gomock.Any(), int64(1)).
		Return([]lives.StreamingURL{hlsURL}, nil).Times(times)
}

func (s *ServiceTestSuite) TestGetNowLiveCached() {
	s.expectOneOnline("jkt48", 1)

	first, err := s.svc.GetNowLive(s.ctx, "jkt48")
	s.Require().NoError(err)
	second, err := s.svc.GetNowLive(s.ctx, "jkt48")
	s.Require().NoError(err)

	s.Equal(first, second)
	s.Equal([]int64{1}, roomIDs(first))
	_, ok := s.cache.Get("jkt48-now_live")
	s.True(ok)
}

func (s *ServiceTestSuite) TestGetNowLiveExpires() {
	s.expectOneOnline("", 2)

	_, err := s.svc.GetNowLive(s.ctx, "")
	s.Require().NoError(err)
	s.clock.Advance(4 * time.Second)
	_, err = s.svc.GetNowLive(s.ctx, "")
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Second)
	rooms, err := s.svc.GetNowLive(s.ctx, "")
	s.Require().NoError(err)
	s.Len(rooms, 1)

	_, ok := s.cache.Get(lives.CacheKeyNowLive)
	s.True(ok)
}

func (s *ServiceTestSuite) TestGetNowLiveGroupsCachedSeparately() {
	s.expectOneOnline("jkt48", 1)
	s.expectOneOnline("hinatazaka46", 1)

	_, err := s.svc.GetNowLive(s.ctx, "jkt48")
	s.Require().NoError(err)
	_, err = s.svc.GetNowLive(s.ctx, "hinatazaka46")
	s.Require().NoError(err)
	_, err = s.svc.GetNowLive(s.ctx, "jkt48")
	s.Require().NoError(err)

	s.Equal(2, s.cache.Len())
}

func (s *ServiceTestSuite) TestGetNowLiveConcurrentCallersShareOneRun() {
	release := make(chan struct{})
	entered := make(chan struct{})

	s.directory.EXPECT().ListMembers(gomock.Any(), "jkt48").
		Return([]lives.Member{testMembers()[0]}, nil).Times(1)
	s.platform.EXPECT().GetFollowedRooms(gomock.Any()).DoAndReturn(
		func(_ context.Context) ([]lives.RoomFollow, error) {
			close(entered)
			<-release
			return []lives.RoomFollow{{RoomID: 1, IsOnline: true, RoomURLKey: "48_Freya"}}, nil
		}).Times(1)
	s.platform.EXPECT().GetRoomStatus(gomock.Any(), "48_Freya").Return(&lives.RoomStatus{}, nil).Times(1)
	s.platform.EXPECT().GetStreamingURLs(gomock.Any(), int64(1)).Return(nil, nil).Times(1)

	const callers = 4
	results := make([][]lives.LiveRoom, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = s.svc.GetNowLive(s.ctx, "jkt48")
	}()
	<-entered
	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.svc.GetNowLive(s.ctx, "jkt48")
		}(i)
	}
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		s.Require().NoError(errs[i])
		s.Equal(results[0], results[i])
	}
}

func (s *ServiceTestSuite) TestGetNowLiveReturnsFreshSlice() {
	s.expectOneOnline("", 1)

	first, err := s.svc.GetNowLive(s.ctx, "")
	s.Require().NoError(err)
	first[0].Name = "changed"

	second, err := s.svc.GetNowLive(s.ctx, "")
	s.Require().NoError(err)
	s.Len(second, 1)
	s.Equal("Freya", second[0].Name)
}

func (s *ServiceTestSuite) TestDirectoryErrorNotCached() {
	s.directory.EXPECT().ListMembers(gomock.Any(), "jkt48").
		Return(nil, errors.PureNew("redis down"))

	_, err := s.svc.GetNowLive(s.ctx, "jkt48")
	s.Require().Error(err)
	s.True(errors.Is(err, lives.ErrDirectory))
	s.Equal(0, s.cache.Len())

	s.expectOneOnline("jkt48", 1)
	rooms, err := s.svc.GetNowLive(s.ctx, "jkt48")
	s.Require().NoError(err)
	s.Len(rooms, 1)
}

func (s *ServiceTestSuite) TestGetNowLiveDirectLoadsRoster() {
	s.directory.EXPECT().ListMembers(gomock.Any(), "jkt48").Return(testMembers()[:1], nil)
	s.platform.EXPECT().CheckLive(gomock.Any(), int64(1)).Return(false, nil)

	rooms, err := s.svc.GetNowLiveDirect(s.ctx, nil, "jkt48")

	s.Require().NoError(err)
	s.Empty(rooms)
}

func (s *ServiceTestSuite) TestGetNowLiveDirectUsesGivenMembers() {
	s.platform.EXPECT().CheckLive(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)

	rooms, err := s.svc.GetNowLiveDirect(s.ctx, testMembers(), "ignored")

	s.Require().NoError(err)
	s.Empty(rooms)
}

func (s *ServiceTestSuite) TestGetNowLiveFollowedUncached() {
	s.expectOneOnline("", 2)

	_, err := s.svc.GetNowLiveFollowed(s.ctx, nil, "")
	s.Require().NoError(err)
	_, err = s.svc.GetNowLiveFollowed(s.ctx, nil, "")
	s.Require().NoError(err)

	s.Equal(0, s.cache.Len())
}

func (s *ServiceTestSuite) TestGetNowLiveGlobal() {
	s.directory.EXPECT().ListMembers(gomock.Any(), "").Return(testMembers(), nil)
	s.platform.EXPECT().GetOnlives(gomock.Any()).Return(&lives.OnliveFeed{Onlives: []lives.OnliveGenre{
		{Lives: []lives.OnliveRoom{{RoomID: 3, MainName: "Team"}}},
	}}, nil)

	rooms, err := s.svc.GetNowLiveGlobal(s.ctx, nil)

	s.Require().NoError(err)
	s.Equal([]int64{3}, roomIDs(rooms))
}

func (s *ServiceTestSuite) TestGetNowLiveGlobalFeedError() {
	s.platform.EXPECT().GetOnlives(gomock.Any()).Return(nil, errors.New(lives.ErrFeed, "bad gateway"))

	_, err := s.svc.GetNowLiveGlobal(s.ctx, testMembers())

	s.True(errors.Is(err, lives.ErrFeed))
}
