package entities

import "time"

// NotAvailable is the display fallback for references that no longer resolve.
const NotAvailable = "N/A"

// Record is implemented by every registry entity.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
}

type ProjectStatus string

const (
	ProjectStatusPlanning   ProjectStatus = "Planning"
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project is a construction site (obra).
type Project struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	ClientID  string        `json:"client_id"`
	Budget    float64       `json:"budget"`
	StartDate time.Time     `json:"start_date"`
	Status    ProjectStatus `json:"status"`
}

func (p Project) RecordID() string { return p.ID }

func (p Project) WithID(id string) Project {
	p.ID = id
	return p
}

type Supplier struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Document      string  `json:"document"`
	ContactPerson string  `json:"contact_person,omitempty"`
	Website       string  `json:"website,omitempty"`
	Rating        float64 `json:"rating"`
}

func (s Supplier) RecordID() string { return s.ID }

func (s Supplier) WithID(id string) Supplier {
	s.ID = id
	return s
}

type Client struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

func (c Client) RecordID() string { return c.ID }

func (c Client) WithID(id string) Client {
	c.ID = id
	return c
}

// Material is a catalog entry.
type Material struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Unit        string  `json:"unit"`
	Description string  `json:"description,omitempty"`
	MinStock    float64 `json:"min_stock,omitempty"`
}

func (m Material) RecordID() string { return m.ID }

func (m Material) WithID(id string) Material {
	m.ID = id
	return m
}

// NameOf returns the display name of a registry record or the N/A fallback.
func NameOf(name string, found bool) string {
	if !found || name == "" {
		return NotAvailable
	}
	return name
}
