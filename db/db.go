package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"achieveit/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// Колонки курса; email/name заказчика маппятся во вложенную структуру Poster
const courseColumns = `id, course_title, category, description, price, deadline, bid_count,
        poster_email AS "poster.email", poster_name AS "poster.name", created_at`

// Course (Курс)

func (s *Storage) GetCourses(ctx context.Context) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM course`
	courses := []models.Course{}
	err := s.db.SelectContext(ctx, &courses, query)
	return courses, err
}

func (s *Storage) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	c := &models.Course{}
	query := `SELECT ` + courseColumns + ` FROM course WHERE id=$1`
	err := s.db.GetContext(ctx, c, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	return c, err
}

func (s *Storage) GetCoursesByPoster(ctx context.Context, email string) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM course WHERE poster_email=$1`
	courses := []models.Course{}
	err := s.db.SelectContext(ctx, &courses, query, email)
	return courses, err
}

// buildCourseSearchQuery собирает запрос поиска курсов.
// Правило композиции: search вытесняет filter по категории (последний
// применённый фильтр побеждает, вместе они не комбинируются).
// search — регистронезависимое вхождение в course_title.
// sort принимает "asc"|"desc" по deadline, всё прочее трактуется как "desc".
func buildCourseSearchQuery(filter, search, sort string) (string, []interface{}) {
	query := `SELECT ` + courseColumns + ` FROM course`
	var args []interface{}

	if filter != "" {
		query += ` WHERE category = $1`
		args = append(args, filter)
	}
	if search != "" {
		query = `SELECT ` + courseColumns + ` FROM course WHERE course_title ILIKE $1`
		args = []interface{}{"%" + search + "%"}
	}

	order := " DESC"
	if sort == "asc" {
		order = " ASC"
	}
	query += ` ORDER BY deadline` + order

	return query, args
}

func (s *Storage) SearchCourses(ctx context.Context, filter, search, sort string) ([]models.Course, error) {
	query, args := buildCourseSearchQuery(filter, search, sort)
	courses := []models.Course{}
	err := s.db.SelectContext(ctx, &courses, query, args...)
	return courses, err
}

func (s *Storage) CreateCourse(ctx context.Context, c *models.Course) (models.InsertResult, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `
        INSERT INTO course
            (id, course_title, category, description, price, deadline, bid_count, poster_email, poster_name)
        VALUES
            ($1, $2, $3, $4, $5, $6, 0, $7, $8)
        RETURNING created_at`
	err := s.db.QueryRowContext(ctx, query,
		c.ID, c.CourseTitle, c.Category, c.Description, c.Price, c.Deadline,
		c.Poster.Email, c.Poster.Name).
		Scan(&c.CreatedAt)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{InsertedID: c.ID}, nil
}

func (s *Storage) DeleteCourse(ctx context.Context, id string) (models.DeleteResult, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM course WHERE id=$1`, id)
	if err != nil {
		return models.DeleteResult{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.DeleteResult{}, err
	}
	// Отсутствующий id — это deletedCount 0, не ошибка
	return models.DeleteResult{DeletedCount: n}, nil
}

// UpdateCourse полностью перезаписывает поля курса по id.
// При upsert=true и отсутствующем id вставляется новый документ с
// этими данными — сохранённое поведение, а не ошибка. bid_count при
// обновлении не трогаем, им владеет поток создания предложений.
func (s *Storage) UpdateCourse(ctx context.Context, id string, c *models.Course, upsert bool) (models.UpdateResult, error) {
	query := `
        UPDATE course
        SET course_title=$1, category=$2, description=$3, price=$4, deadline=$5,
            poster_email=$6, poster_name=$7
        WHERE id=$8`
	res, err := s.db.ExecContext(ctx, query,
		c.CourseTitle, c.Category, c.Description, c.Price, c.Deadline,
		c.Poster.Email, c.Poster.Name, id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.UpdateResult{}, err
	}
	if n > 0 {
		return models.UpdateResult{MatchedCount: n, ModifiedCount: n}, nil
	}
	if !upsert {
		return models.UpdateResult{}, nil
	}

	insert := `
        INSERT INTO course
            (id, course_title, category, description, price, deadline, bid_count, poster_email, poster_name)
        VALUES
            ($1, $2, $3, $4, $5, $6, 0, $7, $8)`
	_, err = s.db.ExecContext(ctx, insert,
		id, c.CourseTitle, c.Category, c.Description, c.Price, c.Deadline,
		c.Poster.Email, c.Poster.Name)
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{UpsertedID: id}, nil
}

// Bid (Предложение)

func (s *Storage) CreateBid(ctx context.Context, b *models.Bid) (models.InsertResult, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	query := `
        INSERT INTO bid
            (id, course_id, email, poster_email, course_title, price, deadline, status)
        VALUES
            ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at`
	err := s.db.QueryRowContext(ctx, query,
		b.ID, b.CourseID, b.Email, b.PosterEmail, b.CourseTitle, b.Price, b.Deadline, b.Status).
		Scan(&b.CreatedAt)
	if err != nil {
		return models.InsertResult{}, err
	}
	return models.InsertResult{InsertedID: b.ID}, nil
}

// IncrementBidCount атомарно увеличивает счётчик предложений курса.
// Один UPDATE-стейтмент закрывает гонку read-modify-write: два
// одновременных отклика дают +2, потерянных инкрементов нет.
// Возвращает число затронутых строк (0 — курс не найден).
func (s *Storage) IncrementBidCount(ctx context.Context, courseID string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE course SET bid_count = bid_count + 1 WHERE id=$1`, courseID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Storage) GetBidsByPoster(ctx context.Context, posterEmail string) ([]models.Bid, error) {
	query := `SELECT * FROM bid WHERE poster_email=$1 ORDER BY created_at DESC`
	bids := []models.Bid{}
	err := s.db.SelectContext(ctx, &bids, query, posterEmail)
	return bids, err
}

func (s *Storage) GetBidsByBidder(ctx context.Context, email string) ([]models.Bid, error) {
	query := `SELECT * FROM bid WHERE email=$1 ORDER BY created_at DESC`
	bids := []models.Bid{}
	err := s.db.SelectContext(ctx, &bids, query, email)
	return bids, err
}

// UpdateBidStatus меняет только колонку status предложения
func (s *Storage) UpdateBidStatus(ctx context.Context, id string, status models.BidStatus) (models.UpdateResult, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE bid SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.UpdateResult{}, err
	}
	return models.UpdateResult{MatchedCount: n, ModifiedCount: n}, nil
}

// ValidateID проверяет, что id ресурса в формате uuid.
// Кривой id — это ErrInvalidInput, а не паника и не запрос в БД.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed id %q", models.ErrInvalidInput, id)
	}
	return nil
}
