package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"offices-service/internal/entities"
	apperrors "offices-service/pkg/errors"
)

// OfficeFilter — типизированный фильтр выборки. В слой хранилища не
// попадают произвольные предикаты, только поля этой структуры.
type OfficeFilter struct {
	IsActive *bool
}

func (f OfficeFilter) ToBson() bson.M {
	query := bson.M{}
	if f.IsActive != nil {
		query["is_active"] = *f.IsActive
	}
	return query
}

type OfficeRepositoryInterface interface {
	CreateOffice(ctx context.Context, office *entities.Office) error
	FindOffice(ctx context.Context, id string) (*entities.Office, error)
	GetOffices(ctx context.Context) ([]entities.Office, error)
	GetOfficesByFilter(ctx context.Context, filter OfficeFilter) ([]entities.Office, error)
	UpdateOffice(ctx context.Context, office *entities.Office) error
	DeleteOffice(ctx context.Context, id string) error
}

type OfficeRepository struct {
	collection *mongo.Collection
}

func NewOfficeRepository(db *mongo.Database, collectionName string) OfficeRepositoryInterface {
	return &OfficeRepository{
		collection: db.Collection(collectionName),
	}
}

func (r *OfficeRepository) CreateOffice(ctx context.Context, office *entities.Office) error {
	_, err := r.collection.InsertOne(ctx, office)
	return err
}

func (r *OfficeRepository) FindOffice(ctx context.Context, id string) (*entities.Office, error) {
	var office entities.Office

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&office)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFoundError("Офис не найден")
	}
	if err != nil {
		return nil, err
	}

	return &office, nil
}

func (r *OfficeRepository) GetOffices(ctx context.Context) ([]entities.Office, error) {
	return r.find(ctx, bson.M{})
}

func (r *OfficeRepository) GetOfficesByFilter(ctx context.Context, filter OfficeFilter) ([]entities.Office, error) {
	return r.find(ctx, filter.ToBson())
}

func (r *OfficeRepository) find(ctx context.Context, query bson.M) ([]entities.Office, error) {
	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	offices := make([]entities.Office, 0)
	if err := cursor.All(ctx, &offices); err != nil {
		return nil, err
	}

	return offices, nil
}

// UpdateOffice заменяет документ целиком по идентификатору.
func (r *OfficeRepository) UpdateOffice(ctx context.Context, office *entities.Office) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": office.ID}, office)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.NewNotFoundError("Офис не найден")
	}
	return nil
}

func (r *OfficeRepository) DeleteOffice(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.NewNotFoundError("Офис не найден")
	}
	return nil
}
