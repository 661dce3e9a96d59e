package models

import "time"

// Сущность Заказчика (вложенный объект курса)
type Poster struct {
	Email string `db:"email" json:"email"`
	Name  string `db:"name" json:"name"`
}

// Сущность Курса (размещаемое задание)
type Course struct {
	ID          string    `db:"id" json:"_id"`
	CourseTitle string    `db:"course_title" json:"course_title" validate:"required,max=200"`
	Category    string    `db:"category" json:"category" validate:"required"`
	Description string    `db:"description" json:"description"`
	Price       string    `db:"price" json:"price"`
	Deadline    string    `db:"deadline" json:"deadline"`
	BidCount    int       `db:"bid_count" json:"bidCount"`
	Poster      Poster    `db:"poster" json:"poster"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// Сущность Предложения (отклик на курс)
type Bid struct {
	ID          string    `db:"id" json:"_id"`
	CourseID    string    `db:"course_id" json:"courseId" validate:"required,uuid"`
	Email       string    `db:"email" json:"email" validate:"required,email"`
	PosterEmail string    `db:"poster_email" json:"posterEmail"`
	CourseTitle string    `db:"course_title" json:"course_title"`
	Price       string    `db:"price" json:"price"`
	Deadline    string    `db:"deadline" json:"deadline"`
	Status      BidStatus `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// BidStatus — закрытый набор статусов предложения
type BidStatus string

const (
	BidStatusPending    BidStatus = "Pending"
	BidStatusInProgress BidStatus = "In Progress"
	BidStatusRejected   BidStatus = "Rejected"
	BidStatusComplete   BidStatus = "Complete"
)

// Valid проверяет, что статус входит в закрытый набор
func (s BidStatus) Valid() bool {
	switch s {
	case BidStatusPending, BidStatusInProgress, BidStatusRejected, BidStatusComplete:
		return true
	}
	return false
}

// Результаты операций хранилища в формате ответа API

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}
