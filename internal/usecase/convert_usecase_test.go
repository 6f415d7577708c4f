package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gridref-microservice/internal/domain"
	"github.com/gridref-microservice/internal/pkg/geo"
	"github.com/gridref-microservice/internal/usecase"
	"github.com/gridref-microservice/internal/usecase/dto"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func newConvertUseCase(cache *MockCacheRepository) *usecase.ConvertUseCase {
	return usecase.NewConvertUseCase(cache, zap.NewNop(), time.Hour, 24*time.Hour)
}

func TestConvertUseCase_TileBounds(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss computes and stores bounds", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockCache.On("Get", mock.Anything, "bounds:tile:12:1205:1540").
			Return(nil, errors.New("redis: nil"))
		mockCache.On("Set", mock.Anything, "bounds:tile:12:1205:1540", mock.Anything, 24*time.Hour).
			Return(nil)

		uc := newConvertUseCase(mockCache)

		box, err := uc.TileBounds(ctx, 1205, 1540, 12)
		require.NoError(t, err)

		assert.InDelta(t, -74.091796875, box.MinLon, 1e-12)
		assert.InDelta(t, -74.00390625, box.MaxLon, 1e-12)
		assert.InDelta(t, 40.713955826286046, box.MaxLat, 1e-12)
		assert.InDelta(t, 40.64730356252251, box.MinLat, 1e-12)

		mockCache.AssertExpectations(t)
	})

	t.Run("cache hit skips computation", func(t *testing.T) {
		cached := domain.BoundingBox{MinLat: 1, MinLon: 2, MaxLat: 3, MaxLon: 4}
		data, err := json.Marshal(cached)
		require.NoError(t, err)

		mockCache := &MockCacheRepository{}
		mockCache.On("Get", mock.Anything, "bounds:tile:3:2:3").Return(data, nil)

		uc := newConvertUseCase(mockCache)

		box, err := uc.TileBounds(ctx, 2, 3, 3)
		require.NoError(t, err)
		assert.Equal(t, cached, box)

		mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache write failure is not fatal", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockCache.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("redis: nil"))
		mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("connection refused"))

		uc := newConvertUseCase(mockCache)

		box, err := uc.TileBounds(ctx, 0, 0, 0)
		require.NoError(t, err)
		assert.InDelta(t, -180.0, box.MinLon, 1e-12)
		assert.InDelta(t, 180.0, box.MaxLon, 1e-12)
	})
}

func TestConvertUseCase_MGRSBounds(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss computes zone square bounds", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockCache.On("Get", mock.Anything, "bounds:mgrs:45QXE").
			Return(nil, errors.New("redis: nil"))
		mockCache.On("Set", mock.Anything, "bounds:mgrs:45QXE", mock.Anything, time.Hour).
			Return(nil)

		uc := newConvertUseCase(mockCache)

		resp, err := uc.MGRSBounds(ctx, "45QXE")
		require.NoError(t, err)

		assert.Equal(t, "45QXE", resp.Reference)
		assert.False(t, resp.Approximate)
		assert.InDelta(t, 21.69950760265098, resp.Bounds.MinLat, 1e-9)
		assert.InDelta(t, 87.96966341983993, resp.Bounds.MinLon, 1e-9)
		assert.InDelta(t, 22.597818777641994, resp.Bounds.MaxLat, 1e-9)
		assert.InDelta(t, 88.93954323162008, resp.Bounds.MaxLon, 1e-9)

		mockCache.AssertExpectations(t)
	})

	t.Run("reference is normalized before cache lookup", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockCache.On("Get", mock.Anything, "bounds:mgrs:45QXE").
			Return(nil, errors.New("redis: nil"))
		mockCache.On("Set", mock.Anything, "bounds:mgrs:45QXE", mock.Anything, time.Hour).
			Return(nil)

		uc := newConvertUseCase(mockCache)

		resp, err := uc.MGRSBounds(ctx, "  45qxe ")
		require.NoError(t, err)
		assert.Equal(t, "45QXE", resp.Reference)

		mockCache.AssertExpectations(t)
	})

	t.Run("approximate flag survives caching", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockCache.On("Get", mock.Anything, "bounds:mgrs:31CAA").
			Return(nil, errors.New("redis: nil"))
		mockCache.On("Set", mock.Anything, "bounds:mgrs:31CAA", mock.Anything, time.Hour).
			Return(nil)

		uc := newConvertUseCase(mockCache)

		resp, err := uc.MGRSBounds(ctx, "31CAA")
		require.NoError(t, err)
		assert.True(t, resp.Approximate)
	})

	t.Run("invalid reference returns error without caching", func(t *testing.T) {
		mockCache := &MockCacheRepository{}
		mockCache.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("redis: nil"))

		uc := newConvertUseCase(mockCache)

		_, err := uc.MGRSBounds(ctx, "ZZ")
		require.Error(t, err)
		assert.ErrorIs(t, err, geo.ErrInvalidReference)

		mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestConvertUseCase_PureConversions(t *testing.T) {
	uc := newConvertUseCase(&MockCacheRepository{})

	t.Run("locate tile", func(t *testing.T) {
		tile := uc.LocateTile(dto.LocateTileRequest{Lat: 41.39, Lon: 2.16, Zoom: 14})
		assert.Equal(t, domain.TileCoordinate{X: 8290, Y: 6119, Zoom: 14}, tile)
	})

	t.Run("tile top left", func(t *testing.T) {
		point := uc.TileTopLeft(0, 0, 0)
		assert.InDelta(t, 85.0511287798066, point.Lat, 1e-12)
		assert.InDelta(t, -180.0, point.Lon, 1e-12)
	})

	t.Run("to utm", func(t *testing.T) {
		utm := uc.ToUTM(dto.ToUTMRequest{Lat: 41.38506389, Lon: 2.17340278})
		assert.Equal(t, 31, utm.Zone)
		assert.Equal(t, "N", utm.Hemisphere)
		assert.InDelta(t, 429772.4468, utm.Easting, 0.01)
		assert.InDelta(t, 4582392.6177, utm.Northing, 0.01)
	})

	t.Run("from utm round trip", func(t *testing.T) {
		point := uc.FromUTM(dto.FromUTMRequest{Zone: 31, Hemisphere: "N", Easting: 429772.4468, Northing: 4582392.6177})
		assert.InDelta(t, 41.38506389, point.Lat, 1e-5)
		assert.InDelta(t, 2.17340278, point.Lon, 1e-5)
	})

	t.Run("encode mgrs", func(t *testing.T) {
		reference, err := uc.EncodeMGRS(dto.EncodeMGRSRequest{Lat: 22.5, Lon: 88.3, Precision: 0})
		require.NoError(t, err)
		assert.Equal(t, "45QXE", reference)
	})

	t.Run("encode mgrs out of coverage", func(t *testing.T) {
		_, err := uc.EncodeMGRS(dto.EncodeMGRSRequest{Lat: 89, Lon: 0, Precision: 5})
		require.Error(t, err)
		assert.ErrorIs(t, err, geo.ErrOutOfCoverage)
	})

	t.Run("decode mgrs", func(t *testing.T) {
		position, err := uc.DecodeMGRS("31UDQ48")
		require.NoError(t, err)
		assert.False(t, position.Approximate)
		assert.InDelta(t, 49.46968365011461, position.Lat, 1e-9)
		assert.InDelta(t, 2.1718645141479236, position.Lon, 1e-9)
	})
}
