package service_test

import (
	"context"
	"errors"
	"testing"
	"tripavail/config"
	"tripavail/infras/otel/mocks"
	catalogMocks "tripavail/internal/domains/catalog/mocks"
	"tripavail/internal/domains/catalog/model"
	"tripavail/internal/domains/catalog/service"
	"tripavail/shared/cache"
	cacheMocks "tripavail/shared/cache/mocks"
	"tripavail/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogService_GetPackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPackage := catalogMocks.NewMockPackage(ctrl)
	mockRoom := catalogMocks.NewMockRoom(ctrl)
	mockAddOn := catalogMocks.NewMockAddOn(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockPackage, mockRoom, mockAddOn, cfg, mockCache, mocks.NewOtel())

	pkg := model.Package{ID: "pkg-1", Type: model.PackageTypeHotel, Status: model.StatusPublished, BasePrice: decimal.NewFromInt(100)}
	rooms := []model.Room{{ID: "room-1", PackageID: "pkg-1", PricePerNight: decimal.NewFromInt(100), TotalUnits: 5}}

	tests := []struct {
		name      string
		setupMock func()
		want      model.Detail
		wantCode  int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), "catalog:package:pkg-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*model.Detail) = model.Detail{Package: pkg}

						return nil
					})
			},
			want: model.Detail{Package: pkg},
		},
		{
			name: "loads package with rooms and add-ons",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				mockPackage.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pkg, nil)
				mockRoom.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(rooms, nil)
				mockAddOn.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				mockCache.EXPECT().Save(gomock.Any(), "catalog:package:pkg-1", gomock.Any(), 3600).Return(nil)
			},
			want: model.Detail{Package: pkg, Rooms: rooms},
		},
		{
			name: "package not found",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				mockPackage.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Package{}, nil)
			},
			wantCode: 404,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				mockPackage.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Package{}, errors.New("database error"))
			},
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.GetPackage(context.Background(), "pkg-1")

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
