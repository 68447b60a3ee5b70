package repository

import (
	"context"

	"morais_erp/internal/domain/entities"
	"morais_erp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectsTableName  = "projects"
	defaultSuppliersTableName = "suppliers"
	defaultClientsTableName   = "clients"
	defaultMaterialsTableName = "materials"
)

// RegistryDynamoRepository persists one registry kind per table. Records are
// stored with their json field names, so the table mirrors the API payloads.
//
// Table requirements:
//   - PK: id (string)

type RegistryDynamoRepository[T entities.Record[T]] struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IRegistryRepository[entities.Project] = (*RegistryDynamoRepository[entities.Project])(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *RegistryDynamoRepository[entities.Project] {
	return newRegistryRepository[entities.Project](ddb, getenvDefault("PROJECTS_TABLE", defaultProjectsTableName))
}

func NewSupplierDynamoRepository(ddb *dynamodb.Client) *RegistryDynamoRepository[entities.Supplier] {
	return newRegistryRepository[entities.Supplier](ddb, getenvDefault("SUPPLIERS_TABLE", defaultSuppliersTableName))
}

func NewClientDynamoRepository(ddb *dynamodb.Client) *RegistryDynamoRepository[entities.Client] {
	return newRegistryRepository[entities.Client](ddb, getenvDefault("CLIENTS_TABLE", defaultClientsTableName))
}

func NewMaterialDynamoRepository(ddb *dynamodb.Client) *RegistryDynamoRepository[entities.Material] {
	return newRegistryRepository[entities.Material](ddb, getenvDefault("MATERIALS_TABLE", defaultMaterialsTableName))
}

func newRegistryRepository[T entities.Record[T]](ddb dynamoAPI, table string) *RegistryDynamoRepository[T] {
	return &RegistryDynamoRepository[T]{ddb: ddb, tableName: table}
}

func jsonTags(o *attributevalue.EncoderOptions) { o.TagKey = "json" }

func jsonTagsDecode(o *attributevalue.DecoderOptions) { o.TagKey = "json" }

func (r *RegistryDynamoRepository[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	av, err := attributevalue.MarshalMapWithOptions(rec, jsonTags)
	if err != nil {
		return zero, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return zero, interfaces.ErrAlreadyExists
		}
		return zero, err
	}
	return rec, nil
}

func (r *RegistryDynamoRepository[T]) Save(ctx context.Context, rec T) (T, error) {
	var zero T
	av, err := attributevalue.MarshalMapWithOptions(rec, jsonTags)
	if err != nil {
		return zero, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return zero, err
	}
	return rec, nil
}

func (r *RegistryDynamoRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var rec T
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return rec, err
	}
	if len(out.Item) == 0 {
		return rec, nil
	}
	if err := attributevalue.UnmarshalMapWithOptions(out.Item, &rec, jsonTagsDecode); err != nil {
		return rec, err
	}
	return rec, nil
}

func (r *RegistryDynamoRepository[T]) List(ctx context.Context) ([]T, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return decodeRecords[T](raw)
}

func decodeRecords[T any](raw []map[string]types.AttributeValue) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, av := range raw {
		var rec T
		if err := attributevalue.UnmarshalMapWithOptions(av, &rec, jsonTagsDecode); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
