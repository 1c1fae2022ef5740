package directory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/imtaco/showroom-live/internal/errors"
	"github.com/imtaco/showroom-live/internal/log"
	"github.com/imtaco/showroom-live/internal/retry"
	"github.com/imtaco/showroom-live/lives"
)

const testKey = "test:members"

type DirectoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	dir    *Directory
	ctx    context.Context
}

func TestDirectorySuite(t *testing.T) {
	suite.Run(t, new(DirectoryTestSuite))
}

func (s *DirectoryTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.dir = New(s.client, &Config{
		Key: testKey,
		Retry: retry.Config{
			InitialInterval: time.Millisecond,
			MaxInterval:     2 * time.Millisecond,
			MaxElapsedTime:  20 * time.Millisecond,
		},
	}, log.NewTest(s.T()))
	s.ctx = context.Background()
}

func (s *DirectoryTestSuite) TearDownTest() {
	_ = s.client.Close()
}

func roster() []lives.Member {
	return []lives.Member{
		{RoomID: 3, Name: "Hina", URL: "/46_hina", Group: "hinatazaka46", RoomExists: true},
		{RoomID: 1, Name: "Freya", URL: "/48_Freya", Group: "jkt48", RoomExists: true},
		{RoomID: 2, Name: "Gita", URL: "48_Gita", Group: "jkt48", IsGraduate: true},
	}
}

func (s *DirectoryTestSuite) TestListAllSorted() {
	s.Require().NoError(s.dir.ReplaceMembers(s.ctx, roster()))

	members, err := s.dir.ListMembers(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(members, 3)
	s.Equal([]int64{1, 2, 3}, []int64{members[0].RoomID, members[1].RoomID, members[2].RoomID})
	s.Equal("Freya", members[0].Name)
	s.True(members[1].IsGraduate)
}

func (s *DirectoryTestSuite) TestListByGroup() {
	s.Require().NoError(s.dir.ReplaceMembers(s.ctx, roster()))

	members, err := s.dir.ListMembers(s.ctx, "jkt48")
	s.Require().NoError(err)
	s.Len(members, 2)
	for _, m := range members {
		s.Equal("jkt48", m.Group)
	}

	members, err = s.dir.ListMembers(s.ctx, "nogizaka46")
	s.Require().NoError(err)
	s.Empty(members)
}

func (s *DirectoryTestSuite) TestListEmptyKey() {
	members, err := s.dir.ListMembers(s.ctx, "")
	s.Require().NoError(err)
	s.NotNil(members)
	s.Empty(members)
}

func (s *DirectoryTestSuite) TestReplaceDropsOldMembers() {
	s.Require().NoError(s.dir.ReplaceMembers(s.ctx, roster()))
	s.Require().NoError(s.dir.ReplaceMembers(s.ctx, roster()[:1]))

	members, err := s.dir.ListMembers(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(members, 1)
	s.Equal(int64(3), members[0].RoomID)

	s.Require().NoError(s.dir.ReplaceMembers(s.ctx, nil))
	s.False(s.mr.Exists(testKey))
}

func (s *DirectoryTestSuite) TestSkipsInvalidMember() {
	s.Require().NoError(s.dir.ReplaceMembers(s.ctx, roster()))
	s.mr.HSet(testKey, "99", "{not json")

	members, err := s.dir.ListMembers(s.ctx, "")
	s.Require().NoError(err)
	s.Len(members, 3)
}

func (s *DirectoryTestSuite) TestRedisDown() {
	s.mr.Close()

	_, err := s.dir.ListMembers(s.ctx, "")
	s.Require().Error(err)
	s.True(errors.Is(err, lives.ErrDirectory))
}

func (s *DirectoryTestSuite) TestSeedFromFile() {
	path := filepath.Join(s.T().TempDir(), "members.json")
	s.Require().NoError(os.WriteFile(path, []byte(`[
		{"room_id": 317727, "name": "Freya", "img": "f.jpg", "url": "/48_Freya", "group": "jkt48", "room_exists": true}
	]`), 0o600))

	s.Require().NoError(s.dir.SeedFromFile(s.ctx, path))

	members, err := s.dir.ListMembers(s.ctx, "jkt48")
	s.Require().NoError(err)
	s.Require().Len(members, 1)
	s.Equal("48_Freya", members[0].RoomURLKey())
}

func (s *DirectoryTestSuite) TestSeedFromFileErrors() {
	err := s.dir.SeedFromFile(s.ctx, filepath.Join(s.T().TempDir(), "missing.json"))
	s.True(errors.Is(err, lives.ErrDirectory))

	path := filepath.Join(s.T().TempDir(), "bad.json")
	s.Require().NoError(os.WriteFile(path, []byte(`{`), 0o600))
	err = s.dir.SeedFromFile(s.ctx, path)
	s.True(errors.Is(err, lives.ErrDirectory))
}
