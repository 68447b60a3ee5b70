package repository

import (
	"context"
	"sort"

	"morais_erp/internal/domain/entities"
	"morais_erp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "material_orders"
	ordersProjectIDIndex   = "project_id-index"
)

type materialItemItem struct {
	ID       string  `dynamodbav:"id"`
	Name     string  `dynamodbav:"name"`
	Quantity float64 `dynamodbav:"quantity"`
	Unit     string  `dynamodbav:"unit"`
	Category string  `dynamodbav:"category,omitempty"`
}

type itemPriceItem struct {
	ItemID    string  `dynamodbav:"item_id"`
	UnitPrice float64 `dynamodbav:"unit_price"`
}

type quoteItem struct {
	ID                string          `dynamodbav:"id"`
	SupplierID        string          `dynamodbav:"supplier_id"`
	TotalPrice        float64         `dynamodbav:"total_price"`
	DeliveryDays      int             `dynamodbav:"delivery_days"`
	IsSelected        bool            `dynamodbav:"is_selected"`
	Justification     string          `dynamodbav:"justification,omitempty"`
	PaymentMethod     string          `dynamodbav:"payment_method,omitempty"`
	Observations      string          `dynamodbav:"observations,omitempty"`
	IsFreightIncluded bool            `dynamodbav:"is_freight_included"`
	FreightCost       float64         `dynamodbav:"freight_cost"`
	BillingTerms      string          `dynamodbav:"billing_terms,omitempty"`
	TermDays          int             `dynamodbav:"term_days"`
	ItemPrices        []itemPriceItem `dynamodbav:"item_prices,omitempty"`
}

// orderItem stores the whole requisition aggregate. total_cost is denormalized
// for consumers reading the table directly; it is recomputed on every write.
type orderItem struct {
	ID          string             `dynamodbav:"id"`
	ProjectID   string             `dynamodbav:"project_id"`
	RequestDate string             `dynamodbav:"request_date"`
	Status      string             `dynamodbav:"status"`
	RequestedBy string             `dynamodbav:"requested_by"`
	Items       []materialItemItem `dynamodbav:"items"`
	Quotes      []quoteItem        `dynamodbav:"order_quotes"`
	TotalCost   float64            `dynamodbav:"total_cost"`
}

// MaterialOrderDynamoRepository persists MaterialOrder aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type MaterialOrderDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IMaterialOrderRepository = (*MaterialOrderDynamoRepository)(nil)

func NewMaterialOrderDynamoRepository(ddb *dynamodb.Client) *MaterialOrderDynamoRepository {
	return newMaterialOrderRepository(ddb)
}

func newMaterialOrderRepository(ddb dynamoAPI) *MaterialOrderDynamoRepository {
	return &MaterialOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MATERIAL_ORDERS_TABLE", defaultOrdersTableName),
	}
}

// Create refuses to overwrite an existing id with interfaces.ErrAlreadyExists.
func (r *MaterialOrderDynamoRepository) Create(ctx context.Context, o entities.MaterialOrder) (entities.MaterialOrder, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.MaterialOrder{}, err
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
			return entities.MaterialOrder{}, interfaces.ErrAlreadyExists
		}
		return entities.MaterialOrder{}, err
	}
	return o, nil
}

func (r *MaterialOrderDynamoRepository) Save(ctx context.Context, o entities.MaterialOrder) (entities.MaterialOrder, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.MaterialOrder{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.MaterialOrder{}, err
	}
	return o, nil
}

func (r *MaterialOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.MaterialOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MaterialOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.MaterialOrder{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MaterialOrder{}, err
	}
	return fromOrderItem(it), nil
}

func (r *MaterialOrderDynamoRepository) List(ctx context.Context) ([]entities.MaterialOrder, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, err
	}
	return decodeOrders(raw)
}

func (r *MaterialOrderDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.MaterialOrder, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}
	return decodeOrders(raw)
}

// decodeOrders returns orders newest first.
func decodeOrders(raw []map[string]types.AttributeValue) ([]entities.MaterialOrder, error) {
	orders := make([]entities.MaterialOrder, 0, len(raw))
	for _, av := range raw {
		var it orderItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].RequestDate.After(orders[j].RequestDate)
	})
	return orders, nil
}

func toOrderItem(o entities.MaterialOrder) orderItem {
	items := make([]materialItemItem, 0, len(o.Items))
	for _, mi := range o.Items {
		items = append(items, materialItemItem{ID: mi.ID, Name: mi.Name, Quantity: mi.Quantity, Unit: mi.Unit, Category: mi.Category})
	}
	quotes := make([]quoteItem, 0, len(o.Quotes))
	for _, q := range o.Quotes {
		prices := make([]itemPriceItem, 0, len(q.ItemPrices))
		for _, p := range q.ItemPrices {
			prices = append(prices, itemPriceItem{ItemID: p.ItemID, UnitPrice: p.UnitPrice})
		}
		quotes = append(quotes, quoteItem{
			ID:                q.ID,
			SupplierID:        q.SupplierID,
			TotalPrice:        q.TotalPrice,
			DeliveryDays:      q.DeliveryDays,
			IsSelected:        q.IsSelected,
			Justification:     q.Justification,
			PaymentMethod:     string(q.PaymentMethod),
			Observations:      q.Observations,
			IsFreightIncluded: q.IsFreightIncluded,
			FreightCost:       q.FreightCost,
			BillingTerms:      q.BillingTerms,
			TermDays:          q.TermDays,
			ItemPrices:        prices,
		})
	}
	return orderItem{
		ID:          o.ID,
		ProjectID:   o.ProjectID,
		RequestDate: formatTime(o.RequestDate),
		Status:      string(o.Status),
		RequestedBy: o.RequestedBy,
		Items:       items,
		Quotes:      quotes,
		TotalCost:   o.TotalCost(),
	}
}

func fromOrderItem(it orderItem) entities.MaterialOrder {
	items := make([]entities.MaterialItem, 0, len(it.Items))
	for _, mi := range it.Items {
		items = append(items, entities.MaterialItem{ID: mi.ID, Name: mi.Name, Quantity: mi.Quantity, Unit: mi.Unit, Category: mi.Category})
	}
	quotes := make([]entities.OrderQuote, 0, len(it.Quotes))
	for _, q := range it.Quotes {
		var prices []entities.ItemQuoteEntry
		for _, p := range q.ItemPrices {
			prices = append(prices, entities.ItemQuoteEntry{ItemID: p.ItemID, UnitPrice: p.UnitPrice})
		}
		quotes = append(quotes, entities.OrderQuote{
			ID:                q.ID,
			SupplierID:        q.SupplierID,
			TotalPrice:        q.TotalPrice,
			DeliveryDays:      q.DeliveryDays,
			IsSelected:        q.IsSelected,
			Justification:     q.Justification,
			PaymentMethod:     entities.PaymentMethod(q.PaymentMethod),
			Observations:      q.Observations,
			IsFreightIncluded: q.IsFreightIncluded,
			FreightCost:       q.FreightCost,
			BillingTerms:      q.BillingTerms,
			TermDays:          q.TermDays,
			ItemPrices:        prices,
		})
	}
	return entities.MaterialOrder{
		ID:          it.ID,
		ProjectID:   it.ProjectID,
		RequestDate: parseTime(it.RequestDate),
		Status:      entities.OrderStatus(it.Status),
		RequestedBy: it.RequestedBy,
		Items:       items,
		Quotes:      quotes,
	}
}
