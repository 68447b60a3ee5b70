package request

import "morais_erp/internal/domain/entities"

type ProjectRequest struct {
	Name      string  `json:"name" binding:"required"`
	ClientID  string  `json:"client_id"`
	Budget    float64 `json:"budget" binding:"gte=0"`
	StartDate string  `json:"start_date"`
	Status    string  `json:"status"`
}

func (r ProjectRequest) ToEntity() (entities.Project, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return entities.Project{}, err
	}
	return entities.Project{
		Name:      r.Name,
		ClientID:  r.ClientID,
		Budget:    r.Budget,
		StartDate: start,
		Status:    entities.ProjectStatus(r.Status),
	}, nil
}

type SupplierRequest struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Document      string  `json:"document"`
	ContactPerson string  `json:"contact_person"`
	Website       string  `json:"website"`
	Rating        float64 `json:"rating" binding:"gte=0,lte=5"`
}

func (r SupplierRequest) ToEntity() entities.Supplier {
	return entities.Supplier{
		Name:          r.Name,
		Category:      r.Category,
		Email:         r.Email,
		Phone:         r.Phone,
		Document:      r.Document,
		ContactPerson: r.ContactPerson,
		Website:       r.Website,
		Rating:        r.Rating,
	}
}

type ClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

func (r ClientRequest) ToEntity() entities.Client {
	return entities.Client{Name: r.Name, Email: r.Email, Phone: r.Phone, Document: r.Document}
}

type MaterialRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
	MinStock    float64 `json:"min_stock" binding:"gte=0"`
}

func (r MaterialRequest) ToEntity() entities.Material {
	return entities.Material{
		Name:        r.Name,
		Category:    r.Category,
		Unit:        r.Unit,
		Description: r.Description,
		MinStock:    r.MinStock,
	}
}
