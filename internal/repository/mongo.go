package repository

import (
	"context"
	"errors"
	"regexp"

	apperrors "github.com/umalmyha/clientes/internal/errors"
	"github.com/umalmyha/clientes/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const clienteCollection = "cliente"

type mongoClienteRepository struct {
	collection *mongo.Collection
}

// NewMongoClienteRepository builds mongo ClienteRepository
func NewMongoClienteRepository(client *mongo.Client, database string) ClienteRepository {
	return &mongoClienteRepository{collection: client.Database(database).Collection(clienteCollection)}
}

// EnsureMongoIndexes creates unique RUC index, it is safe to call on every start
func EnsureMongoIndexes(ctx context.Context, client *mongo.Client, database string) error {
	_, err := client.Database(database).Collection(clienteCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ruc", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("cliente_ruc_uq"),
	})
	return err
}

func (r *mongoClienteRepository) FindByRUC(ctx context.Context, ruc string) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.collection.FindOne(ctx, bson.M{"ruc": ruc}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *mongoClienteRepository) FindAll(ctx context.Context) ([]*model.Cliente, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "ruc", Value: 1}}))
}

func (r *mongoClienteRepository) SearchByRazonSocial(ctx context.Context, name string) ([]*model.Cliente, error) {
	filter := bson.M{"razonSocial": bson.M{"$regex": regexp.QuoteMeta(name), "$options": "i"}}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "razonSocial", Value: 1}}))
}

func (r *mongoClienteRepository) ExistsByRUC(ctx context.Context, ruc string) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"ruc": ruc}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *mongoClienteRepository) Create(ctx context.Context, c *model.Cliente) error {
	if _, err := r.collection.InsertOne(ctx, c); err != nil {
		return r.translateErr(err, c.RUC)
	}
	return nil
}

func (r *mongoClienteRepository) Update(ctx context.Context, ruc string, c *model.Cliente) error {
	update := bson.M{"$set": bson.M{
		"ruc":         c.RUC,
		"razonSocial": c.RazonSocial,
		"telefono":    c.Telefono,
		"correo":      c.Correo,
		"direccion":   c.Direccion,
	}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"ruc": ruc}, update)
	if err != nil {
		return r.translateErr(err, c.RUC)
	}

	if res.MatchedCount == 0 {
		return notFoundErr(ruc)
	}
	return nil
}

func (r *mongoClienteRepository) DeleteByRUC(ctx context.Context, ruc string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"ruc": ruc})
	if err != nil {
		return err
	}

	if res.DeletedCount == 0 {
		return notFoundErr(ruc)
	}
	return nil
}

func (r *mongoClienteRepository) find(ctx context.Context, filter any, opts *options.FindOptions) ([]*model.Cliente, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	clientes := make([]*model.Cliente, 0)
	for cursor.Next(ctx) {
		var c model.Cliente
		if err := cursor.Decode(&c); err != nil {
			return nil, err
		}
		clientes = append(clientes, &c)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return clientes, nil
}

func (r *mongoClienteRepository) translateErr(err error, ruc string) error {
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.NewDuplicateRUCErr(ruc)
	}
	return err
}
