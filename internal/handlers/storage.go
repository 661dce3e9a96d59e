package handlers

import (
	"context"

	"achieveit/models"
)

type StorageInterface interface {
	GetCourses(ctx context.Context) ([]models.Course, error)
	GetCourse(ctx context.Context, id string) (*models.Course, error)
	GetCoursesByPoster(ctx context.Context, email string) ([]models.Course, error)
	SearchCourses(ctx context.Context, filter, search, sort string) ([]models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) (models.InsertResult, error)
	DeleteCourse(ctx context.Context, id string) (models.DeleteResult, error)
	UpdateCourse(ctx context.Context, id string, course *models.Course, upsert bool) (models.UpdateResult, error)

	CreateBid(ctx context.Context, bid *models.Bid) (models.InsertResult, error)
	IncrementBidCount(ctx context.Context, courseID string) (int64, error)
	GetBidsByPoster(ctx context.Context, posterEmail string) ([]models.Bid, error)
	GetBidsByBidder(ctx context.Context, email string) ([]models.Bid, error)
	UpdateBidStatus(ctx context.Context, id string, status models.BidStatus) (models.UpdateResult, error)
}
