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
	defaultPayablesTableName = "accounts_payable"
	payablesOrderIDIndex     = "order_id-index"
)

type payableItem struct {
	ID            string  `dynamodbav:"id"`
	OrderID       string  `dynamodbav:"order_id,omitempty"`
	ProjectID     string  `dynamodbav:"project_id"`
	SupplierID    string  `dynamodbav:"supplier_id"`
	Description   string  `dynamodbav:"description"`
	Amount        float64 `dynamodbav:"amount"`
	DueDate       string  `dynamodbav:"due_date"`
	Status        string  `dynamodbav:"status"`
	PaymentMethod string  `dynamodbav:"payment_method,omitempty"`
	PaymentDate   string  `dynamodbav:"payment_date,omitempty"`
	Category      string  `dynamodbav:"category"`
	BillingTerms  string  `dynamodbav:"billing_terms,omitempty"`
	Observations  string  `dynamodbav:"observations,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
	CreatedBy     string  `dynamodbav:"created_by"`
}

// AccountPayableDynamoRepository persists AccountPayable entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id), sparse; manual payables carry no order_id

type AccountPayableDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IAccountPayableRepository = (*AccountPayableDynamoRepository)(nil)

func NewAccountPayableDynamoRepository(ddb *dynamodb.Client) *AccountPayableDynamoRepository {
	return newAccountPayableRepository(ddb)
}

func newAccountPayableRepository(ddb dynamoAPI) *AccountPayableDynamoRepository {
	return &AccountPayableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_PAYABLE_TABLE", defaultPayablesTableName),
	}
}

func (r *AccountPayableDynamoRepository) Create(ctx context.Context, ap entities.AccountPayable) (entities.AccountPayable, error) {
	av, err := attributevalue.MarshalMap(toPayableItem(ap))
	if err != nil {
		return entities.AccountPayable{}, err
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
			return entities.AccountPayable{}, interfaces.ErrAlreadyExists
		}
		return entities.AccountPayable{}, err
	}
	return ap, nil
}

func (r *AccountPayableDynamoRepository) Save(ctx context.Context, ap entities.AccountPayable) (entities.AccountPayable, error) {
	av, err := attributevalue.MarshalMap(toPayableItem(ap))
	if err != nil {
		return entities.AccountPayable{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.AccountPayable{}, err
	}
	return ap, nil
}

func (r *AccountPayableDynamoRepository) GetByID(ctx context.Context, id string) (entities.AccountPayable, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AccountPayable{}, err
	}
	if len(out.Item) == 0 {
		return entities.AccountPayable{}, nil
	}

	var it payableItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AccountPayable{}, err
	}
	return fromPayableItem(it), nil
}

// List scans the table; filter fields are pushed down as a FilterExpression.
func (r *AccountPayableDynamoRepository) List(ctx context.Context, filter entities.PayableFilter) ([]entities.AccountPayable, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	var fb filterBuilder
	fb.eq("status", string(filter.Status))
	fb.eq("project_id", filter.ProjectID)
	fb.eq("supplier_id", filter.SupplierID)
	fb.apply(in)

	raw, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	return decodePayables(raw)
}

func (r *AccountPayableDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.AccountPayable, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(payablesOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}
	return decodePayables(raw)
}

func decodePayables(raw []map[string]types.AttributeValue) ([]entities.AccountPayable, error) {
	out := make([]entities.AccountPayable, 0, len(raw))
	for _, av := range raw {
		var it payableItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromPayableItem(it))
	}
	return out, nil
}

func toPayableItem(ap entities.AccountPayable) payableItem {
	return payableItem{
		ID:            ap.ID,
		OrderID:       ap.OrderID,
		ProjectID:     ap.ProjectID,
		SupplierID:    ap.SupplierID,
		Description:   ap.Description,
		Amount:        ap.Amount,
		DueDate:       formatTime(ap.DueDate),
		Status:        string(ap.Status),
		PaymentMethod: string(ap.PaymentMethod),
		PaymentDate:   formatTimePtr(ap.PaymentDate),
		Category:      string(ap.Category),
		BillingTerms:  ap.BillingTerms,
		Observations:  ap.Observations,
		CreatedAt:     formatTime(ap.CreatedAt),
		CreatedBy:     ap.CreatedBy,
	}
}

func fromPayableItem(it payableItem) entities.AccountPayable {
	return entities.AccountPayable{
		ID:            it.ID,
		OrderID:       it.OrderID,
		ProjectID:     it.ProjectID,
		SupplierID:    it.SupplierID,
		Description:   it.Description,
		Amount:        it.Amount,
		DueDate:       parseTime(it.DueDate),
		Status:        entities.PaymentStatus(it.Status),
		PaymentMethod: entities.PaymentMethod(it.PaymentMethod),
		PaymentDate:   parseTimePtr(it.PaymentDate),
		Category:      entities.TransactionCategory(it.Category),
		BillingTerms:  it.BillingTerms,
		Observations:  it.Observations,
		CreatedAt:     parseTime(it.CreatedAt),
		CreatedBy:     it.CreatedBy,
	}
}
