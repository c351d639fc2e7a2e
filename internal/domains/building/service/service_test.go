package service_test

import (
	"context"
	"errors"
	"scams/infras/otel/mocks"
	buildingMocks "scams/internal/domains/building/mocks"
	"scams/internal/domains/building/model"
	"scams/internal/domains/building/model/dto"
	"scams/internal/domains/building/service"
	gDto "scams/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuildingService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := buildingMocks.NewMockBuilding(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		want      dto.ListBuildingsResponse
		wantErr   bool
	}{
		{
			name: "ordered by name",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gDto.QueryParams{SortBy: "buildings.name"}, gDto.FilterGroup{}).
					Return([]model.Building{{ID: 2, Name: "A1 - Science Building"}, {ID: 1, Name: "B2 - Library"}}, nil)
			},
			want: dto.ListBuildingsResponse{Buildings: []dto.BuildingResponse{
				{ID: 2, Name: "A1 - Science Building"},
				{ID: 1, Name: "B2 - Library"},
			}},
		},
		{
			name: "empty",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Building{}, nil)
			},
			want: dto.ListBuildingsResponse{Buildings: []dto.BuildingResponse{}},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.List(context.Background())

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}
