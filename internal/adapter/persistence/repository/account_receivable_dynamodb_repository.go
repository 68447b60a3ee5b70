package repository

import (
	"context"
	"encoding/json"

	"morais_erp/internal/domain/entities"
	"morais_erp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultReceivablesTableName = "accounts_receivable"

type receivableItem struct {
	ID                string                 `dynamodbav:"id"`
	ProjectID         string                 `dynamodbav:"project_id"`
	ClientID          string                 `dynamodbav:"client_id"`
	Description       string                 `dynamodbav:"description"`
	Amount            float64                `dynamodbav:"amount"`
	DueDate           string                 `dynamodbav:"due_date"`
	Status            string                 `dynamodbav:"status"`
	PaymentMethod     string                 `dynamodbav:"payment_method,omitempty"`
	PaymentDate       string                 `dynamodbav:"payment_date,omitempty"`
	InstallmentNumber int                    `dynamodbav:"installment_number"`
	TotalInstallments int                    `dynamodbav:"total_installments"`
	Observations      string                 `dynamodbav:"observations,omitempty"`
	CreatedAt         string                 `dynamodbav:"created_at"`
	CreatedBy         string                 `dynamodbav:"created_by"`
	ProviderPaymentID string                 `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus    string                 `dynamodbav:"provider_status,omitempty"`
	ProviderPayload   map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	ProviderRaw       string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// AccountReceivableDynamoRepository persists AccountReceivable entities in DynamoDB.
//
// The provider response is stored twice: decoded as a map for console queries
// and raw so it can be returned byte for byte.
//
// Table requirements:
//   - PK: id (string)

type AccountReceivableDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IAccountReceivableRepository = (*AccountReceivableDynamoRepository)(nil)

func NewAccountReceivableDynamoRepository(ddb *dynamodb.Client) *AccountReceivableDynamoRepository {
	return newAccountReceivableRepository(ddb)
}

func newAccountReceivableRepository(ddb dynamoAPI) *AccountReceivableDynamoRepository {
	return &AccountReceivableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_RECEIVABLE_TABLE", defaultReceivablesTableName),
	}
}

func (r *AccountReceivableDynamoRepository) Create(ctx context.Context, ar entities.AccountReceivable) (entities.AccountReceivable, error) {
	av, err := attributevalue.MarshalMap(toReceivableItem(ar))
	if err != nil {
		return entities.AccountReceivable{}, err
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
			return entities.AccountReceivable{}, interfaces.ErrAlreadyExists
		}
		return entities.AccountReceivable{}, err
	}
	return ar, nil
}

func (r *AccountReceivableDynamoRepository) Save(ctx context.Context, ar entities.AccountReceivable) (entities.AccountReceivable, error) {
	av, err := attributevalue.MarshalMap(toReceivableItem(ar))
	if err != nil {
		return entities.AccountReceivable{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.AccountReceivable{}, err
	}
	return ar, nil
}

func (r *AccountReceivableDynamoRepository) GetByID(ctx context.Context, id string) (entities.AccountReceivable, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AccountReceivable{}, err
	}
	if len(out.Item) == 0 {
		return entities.AccountReceivable{}, nil
	}

	var it receivableItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AccountReceivable{}, err
	}
	return fromReceivableItem(it), nil
}

func (r *AccountReceivableDynamoRepository) List(ctx context.Context, filter entities.ReceivableFilter) ([]entities.AccountReceivable, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	var fb filterBuilder
	fb.eq("status", string(filter.Status))
	fb.eq("project_id", filter.ProjectID)
	fb.eq("client_id", filter.ClientID)
	fb.apply(in)

	raw, err := scanAll(ctx, r.ddb, in)
	if err != nil {
		return nil, err
	}
	out := make([]entities.AccountReceivable, 0, len(raw))
	for _, av := range raw {
		var it receivableItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromReceivableItem(it))
	}
	return out, nil
}

func toReceivableItem(ar entities.AccountReceivable) receivableItem {
	it := receivableItem{
		ID:                ar.ID,
		ProjectID:         ar.ProjectID,
		ClientID:          ar.ClientID,
		Description:       ar.Description,
		Amount:            ar.Amount,
		DueDate:           formatTime(ar.DueDate),
		Status:            string(ar.Status),
		PaymentMethod:     string(ar.PaymentMethod),
		PaymentDate:       formatTimePtr(ar.PaymentDate),
		InstallmentNumber: ar.InstallmentNumber,
		TotalInstallments: ar.TotalInstallments,
		Observations:      ar.Observations,
		CreatedAt:         formatTime(ar.CreatedAt),
		CreatedBy:         ar.CreatedBy,
		ProviderPaymentID: ar.ProviderPaymentID,
		ProviderStatus:    ar.ProviderStatus,
		ProviderRaw:       string(ar.ProviderPayload),
	}
	if len(ar.ProviderPayload) > 0 {
		var m map[string]interface{}
		if err := json.Unmarshal(ar.ProviderPayload, &m); err == nil {
			it.ProviderPayload = m
		}
	}
	return it
}

func fromReceivableItem(it receivableItem) entities.AccountReceivable {
	ar := entities.AccountReceivable{
		ID:                it.ID,
		ProjectID:         it.ProjectID,
		ClientID:          it.ClientID,
		Description:       it.Description,
		Amount:            it.Amount,
		DueDate:           parseTime(it.DueDate),
		Status:            entities.PaymentStatus(it.Status),
		PaymentMethod:     entities.PaymentMethod(it.PaymentMethod),
		PaymentDate:       parseTimePtr(it.PaymentDate),
		InstallmentNumber: it.InstallmentNumber,
		TotalInstallments: it.TotalInstallments,
		Observations:      it.Observations,
		CreatedAt:         parseTime(it.CreatedAt),
		CreatedBy:         it.CreatedBy,
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderStatus:    it.ProviderStatus,
	}
	switch {
	case it.ProviderRaw != "":
		ar.ProviderPayload = json.RawMessage(it.ProviderRaw)
	case len(it.ProviderPayload) > 0:
		if b, err := json.Marshal(it.ProviderPayload); err == nil {
			ar.ProviderPayload = b
		}
	}
	return ar
}
