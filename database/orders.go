package database

import (
	"context"

	"github.com/pkg/errors"
	"github.com/princinho/estudiobackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
}

type OrderStore struct {
	col *mongo.Collection
}

func NewOrderStore(col *mongo.Collection) *OrderStore { return &OrderStore{col: col} }

func (s *OrderStore) Create(ctx context.Context, order *models.Order) error {
	res, err := s.col.InsertOne(ctx, order)
	if err != nil {
		return errors.Wrap(err, "insert order")
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		order.ID = id
	}
	return nil
}

// SimulatedOrders accepts every order without storing it. It is used when
// no MongoDB URI is configured.
type SimulatedOrders struct{}

func (SimulatedOrders) Create(_ context.Context, order *models.Order) error {
	order.ID = bson.NewObjectID()
	return nil
}
